package behavior

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/questbot/internal/model"
)

// Behavior is a quest behavior driven by the AI tick manager.
type Behavior interface {
	Name() string
	Start(ctx context.Context)
	Stop(ctx context.Context)
	Tick(ctx context.Context)
	IsDone() bool
	CurrentIntention() model.Intention
}

// Factory builds a behavior from profile attributes.
type Factory func(args map[string]string, deps Deps) (Behavior, error)

// factories: lower-cased behavior name → factory.
var factories = map[string]Factory{
	strings.ToLower(InteractWithName): func(args map[string]string, deps Deps) (Behavior, error) {
		return NewInteractWithFromArgs(args, deps)
	},
}

// New builds a behavior by profile name (case-insensitive).
func New(name string, args map[string]string, deps Deps) (Behavior, error) {
	factory, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBehavior, name)
	}
	b, err := factory(args, deps)
	if err != nil {
		return nil, fmt.Errorf("creating behavior %s: %w", name, err)
	}
	return b, nil
}

// Names returns registered behavior names (lower-cased, sorted).
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
