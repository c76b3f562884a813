package ai

import (
	"context"

	"github.com/udisondev/questbot/internal/model"
)

// Controller represents a tickable agent behavior
type Controller interface {
	// Start is called once when the controller is registered
	Start(ctx context.Context)

	// Stop is called once when the controller is unregistered (finished or shutdown)
	Stop(ctx context.Context)

	// Tick performs one decision step; must not block
	Tick(ctx context.Context)

	// IsDone reports that the controller has nothing left to do
	IsDone() bool

	// CurrentIntention returns intention chosen on the last tick
	CurrentIntention() model.Intention
}
