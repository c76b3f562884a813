// Package quest tracks the agent's quest log: which quests are in progress,
// their progress step and whether they are completed.
// Behaviors consult the log to decide when they are no longer needed.
package quest

// Status is the quest log status of a single quest as seen by a behavior.
type Status int

const (
	StatusActive Status = iota
	StatusCompleted
	// StatusNotFound - quest is not in the log (never taken or already turned in)
	StatusNotFound
)

// String returns human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
