package behavior

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/questbot/internal/model"
	"github.com/udisondev/questbot/internal/quest"
)

// Agent is the controlled character as seen by behaviors.
type Agent interface {
	// VisibleObjects returns current objects of the given type with distance and
	// range computed from the agent. No caching across calls.
	VisibleObjects(t model.ObjectType) []model.VisibleObject
	// MoveTo requests navigation toward loc. Fire-and-forget, safe to repeat.
	MoveTo(loc model.Location)
	IsMoving() bool
	StopMoving()
	// Interact triggers the game-side interaction with the object.
	// Fails when the object is gone or out of range.
	Interact(guid uint64) error
	// LagDuration is how long to wait for the server to settle after a command.
	LagDuration() time.Duration
}

// QuestLog answers quest status lookups.
type QuestLog interface {
	Status(questID uint32) quest.Status
	QuestName(questID uint32) (string, bool)
}

// StatusReporter receives human-readable progress text. Side-effect only.
type StatusReporter interface {
	SetStatusText(text string)
	SetGoalText(text string)
}

// InteractionRecord is one completed interaction.
type InteractionRecord struct {
	RunID   string
	QuestID uint32
	GUID    uint64
	Entry   uint32
	Name    string
	Count   int // progress counter after this interaction
	At      time.Time
}

// RunSummary describes a finished behavior run.
type RunSummary struct {
	RunID       string
	Behavior    string
	QuestID     uint32
	MobID       uint32
	Required    int
	Completed   int
	Blacklisted []uint64
	Outcome     Outcome
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Journal persists behavior history. Errors are logged and never stop a behavior.
type Journal interface {
	RecordInteraction(ctx context.Context, rec InteractionRecord) error
	RecordRun(ctx context.Context, sum RunSummary) error
}

// Deps bundles the collaborators a behavior needs.
// Agent and Quests are required; Status and Journal default to log-only sinks.
type Deps struct {
	Agent   Agent
	Quests  QuestLog
	Status  StatusReporter
	Journal Journal
}

func (d Deps) withDefaults() Deps {
	if d.Status == nil {
		d.Status = LogReporter{}
	}
	if d.Journal == nil {
		d.Journal = nopJournal{}
	}
	return d
}

// LogReporter writes status and goal text to slog.
type LogReporter struct{}

func (LogReporter) SetStatusText(text string) {
	slog.Info("status", "text", text)
}

func (LogReporter) SetGoalText(text string) {
	slog.Info("goal", "text", text)
}

type nopJournal struct{}

func (nopJournal) RecordInteraction(context.Context, InteractionRecord) error { return nil }
func (nopJournal) RecordRun(context.Context, RunSummary) error                { return nil }
