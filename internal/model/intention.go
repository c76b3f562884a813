package model

// Intention is what a behavior decided to do on a tick.
type Intention int32

const (
	// IntentionIdle - nothing to do this tick (waiting out a delay or already finished)
	IntentionIdle Intention = iota
	// IntentionComplete - required count reached, behavior marks itself done
	IntentionComplete
	// IntentionMoveTo - target is out of interaction range, walk toward it
	IntentionMoveTo
	// IntentionStop - target is in range but agent is still moving
	IntentionStop
	// IntentionInteract - target is in range and agent stands still
	IntentionInteract
	// IntentionAdvance - no target found, progress is credited anyway
	IntentionAdvance
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionComplete:
		return "COMPLETE"
	case IntentionMoveTo:
		return "MOVE_TO"
	case IntentionStop:
		return "STOP"
	case IntentionInteract:
		return "INTERACT"
	case IntentionAdvance:
		return "ADVANCE"
	default:
		return "UNKNOWN"
	}
}
