package ai

import (
	"context"
	"log/slog"

	"github.com/udisondev/questbot/internal/model"
)

// Sequence runs child controllers one after another, the way a profile lists behaviors.
// A child is started when it becomes current and stopped as soon as it reports done.
type Sequence struct {
	name     string
	children []Controller
	current  int
	started  bool
	stopped  bool
}

// NewSequence creates a sequence of controllers.
func NewSequence(name string, children ...Controller) *Sequence {
	return &Sequence{
		name:     name,
		children: children,
	}
}

// Len returns number of children.
func (s *Sequence) Len() int {
	return len(s.children)
}

// Current returns index of the running child (Len() when finished).
func (s *Sequence) Current() int {
	return s.current
}

// Start starts the first child.
func (s *Sequence) Start(ctx context.Context) {
	if s.started {
		return
	}
	s.started = true
	if s.current < len(s.children) {
		s.children[s.current].Start(ctx)
	}
	slog.Info("sequence started", "name", s.name, "steps", len(s.children))
}

// Stop stops the running child. Children that never started are skipped.
func (s *Sequence) Stop(ctx context.Context) {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.started && s.current < len(s.children) {
		s.children[s.current].Stop(ctx)
	}
	s.current = len(s.children)
}

// Tick advances past finished children and ticks the current one.
func (s *Sequence) Tick(ctx context.Context) {
	if !s.started || s.stopped {
		return
	}
	s.advance(ctx)
	if s.current < len(s.children) {
		s.children[s.current].Tick(ctx)
	}
}

// IsDone returns true when every remaining child reports done.
func (s *Sequence) IsDone() bool {
	for i := s.current; i < len(s.children); i++ {
		if !s.children[i].IsDone() {
			return false
		}
	}
	return true
}

// CurrentIntention returns the running child's intention.
func (s *Sequence) CurrentIntention() model.Intention {
	if s.current < len(s.children) {
		return s.children[s.current].CurrentIntention()
	}
	return model.IntentionIdle
}

func (s *Sequence) advance(ctx context.Context) {
	for s.current < len(s.children) && s.children[s.current].IsDone() {
		s.children[s.current].Stop(ctx)
		s.current++
		if s.current < len(s.children) {
			slog.Info("sequence step", "name", s.name, "step", s.current+1, "of", len(s.children))
			s.children[s.current].Start(ctx)
		}
	}
}
