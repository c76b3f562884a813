// Package migrations embeds the goose SQL migrations of the behavior journal.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
