package behavior

import "github.com/udisondev/questbot/internal/quest"

// IsComplete decides whether a quest behavior should terminate.
// The quest log is authoritative: a completed or vanished quest ends the behavior
// regardless of how many interactions were counted.
func IsComplete(doneFlag bool, status quest.Status) bool {
	return doneFlag ||
		status == quest.StatusCompleted ||
		status == quest.StatusNotFound
}

// Outcome is the reason a behavior run finished.
type Outcome string

const (
	OutcomeCountReached   Outcome = "count_reached"
	OutcomeQuestCompleted Outcome = "quest_completed"
	OutcomeQuestNotFound  Outcome = "quest_not_found"
	// OutcomeStopped - unregistered before completion (shutdown or cancel)
	OutcomeStopped Outcome = "stopped"
)

// outcomeOf maps the termination inputs to the run outcome.
// Counter completion wins over quest status when both hold.
func outcomeOf(doneFlag bool, status quest.Status) Outcome {
	switch {
	case doneFlag:
		return OutcomeCountReached
	case status == quest.StatusCompleted:
		return OutcomeQuestCompleted
	case status == quest.StatusNotFound:
		return OutcomeQuestNotFound
	default:
		return OutcomeStopped
	}
}
