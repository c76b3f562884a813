package behavior

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/questbot/internal/ai"
	"github.com/udisondev/questbot/internal/model"
)

// InteractWithName is the profile name of the InteractWith behavior.
const InteractWithName = "InteractWith"

// DefaultInteractCooldown is the pause after each interaction before the next decision.
const DefaultInteractCooldown = 3 * time.Second

// waitPhase is a non-blocking wait the behavior sits in between ticks.
type waitPhase int

const (
	phaseReady waitPhase = iota
	// phaseAwaitingSettle - lag compensation after a stop or an interaction
	phaseAwaitingSettle
	// phaseAwaitingCooldown - fixed pause after an interaction
	phaseAwaitingCooldown
)

// tickInput is everything decide needs to pick an intention.
type tickInput struct {
	counter  int
	required int
	target   model.VisibleObject
	found    bool
	moving   bool
}

type rule struct {
	intention model.Intention
	when      func(in tickInput) bool
}

// interactRules are evaluated top to bottom, first match wins.
var interactRules = []rule{
	{model.IntentionComplete, func(in tickInput) bool { return in.counter >= in.required }},
	{model.IntentionMoveTo, func(in tickInput) bool { return in.found && !in.target.InRange }},
	{model.IntentionStop, func(in tickInput) bool { return in.found && in.target.InRange && in.moving }},
	{model.IntentionInteract, func(in tickInput) bool { return in.found && in.target.InRange }},
	// No target at all: credit progress anyway so the behavior cannot hang.
	{model.IntentionAdvance, func(tickInput) bool { return true }},
}

// decide returns the intention of the first matching rule.
func decide(in tickInput) model.Intention {
	for _, r := range interactRules {
		if r.when(in) {
			return r.intention
		}
	}
	return model.IntentionIdle
}

// InteractWith repeatedly interacts with the nearest object of a template
// until NumOfTimes interactions are counted or the quest is done.
//
// State machine per tick: COMPLETE → MOVE_TO → STOP → INTERACT → ADVANCE.
// Waits after stop and interact are sub-states with a resume time, so Tick never blocks.
// Not safe for concurrent use: tick it from one goroutine.
type InteractWith struct {
	cfg  InteractWithConfig
	deps Deps

	now      func() time.Time
	cooldown time.Duration

	runID     string
	startedAt time.Time
	started   bool
	stopped   bool

	blacklist *Blacklist
	counter   int
	done      bool
	intention model.Intention

	phase       waitPhase
	afterSettle waitPhase
	resumeAt    time.Time

	lastStatus string
}

// NewInteractWith creates the behavior from a typed config.
func NewInteractWith(cfg InteractWithConfig, deps Deps) (*InteractWith, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Agent == nil {
		return nil, errors.New("interact with: agent is required")
	}
	if deps.Quests == nil {
		return nil, errors.New("interact with: quest log is required")
	}

	return &InteractWith{
		cfg:       cfg,
		deps:      deps.withDefaults(),
		now:       time.Now,
		cooldown:  DefaultInteractCooldown,
		runID:     uuid.NewString(),
		blacklist: NewBlacklist(),
	}, nil
}

// NewInteractWithFromArgs parses profile attributes and creates the behavior.
// Returns *ConfigError listing every bad attribute; the behavior is not created then.
func NewInteractWithFromArgs(args map[string]string, deps Deps) (*InteractWith, error) {
	cfg, err := ParseInteractWithArgs(args)
	if err != nil {
		return nil, err
	}
	return NewInteractWith(cfg, deps)
}

// SetClock replaces the time source (tests and simulations).
func (b *InteractWith) SetClock(now func() time.Time) {
	b.now = now
}

// SetCooldown overrides the post-interaction pause.
func (b *InteractWith) SetCooldown(d time.Duration) {
	b.cooldown = d
}

// Name returns the profile name of the behavior.
func (b *InteractWith) Name() string {
	return InteractWithName
}

// RunID returns the unique ID of this run.
func (b *InteractWith) RunID() string {
	return b.runID
}

// Config returns the behavior configuration.
func (b *InteractWith) Config() InteractWithConfig {
	return b.cfg
}

// Counter returns the progress counter.
func (b *InteractWith) Counter() int {
	return b.counter
}

// Blacklist returns the objects already interacted with.
func (b *InteractWith) Blacklist() *Blacklist {
	return b.blacklist
}

// CurrentIntention returns the intention chosen on the last tick.
func (b *InteractWith) CurrentIntention() model.Intention {
	return b.intention
}

// Waiting reports whether the behavior is inside a settle or cooldown wait.
func (b *InteractWith) Waiting() bool {
	return b.phase != phaseReady
}

// ResumeAt returns when the current wait ends. Zero when not waiting.
func (b *InteractWith) ResumeAt() time.Time {
	if b.phase == phaseReady {
		return time.Time{}
	}
	if b.phase == phaseAwaitingSettle && b.afterSettle == phaseAwaitingCooldown {
		return b.resumeAt.Add(b.cooldown)
	}
	return b.resumeAt
}

// Start marks the run start and publishes the goal text.
func (b *InteractWith) Start(_ context.Context) {
	if b.started {
		return
	}
	b.started = true
	b.startedAt = b.now()

	if name, ok := b.deps.Quests.QuestName(b.cfg.QuestID); ok {
		b.deps.Status.SetGoalText(fmt.Sprintf("Interacting with Mob Id:%d %d Times for quest:%s",
			b.cfg.MobID, b.cfg.NumOfTimes, name))
	}

	slog.Info("behavior started",
		"behavior", InteractWithName,
		"runID", b.runID,
		"questID", b.cfg.QuestID,
		"mobID", b.cfg.MobID,
		"numOfTimes", b.cfg.NumOfTimes,
		"objectType", b.cfg.ObjectType,
		"collectionDistance", b.cfg.CollectionDistance,
		"location", b.cfg.Location)
}

// Stop finishes the run and writes its summary to the journal. Idempotent.
func (b *InteractWith) Stop(ctx context.Context) {
	if b.stopped {
		return
	}
	b.stopped = true

	status := b.deps.Quests.Status(b.cfg.QuestID)
	sum := RunSummary{
		RunID:       b.runID,
		Behavior:    InteractWithName,
		QuestID:     b.cfg.QuestID,
		MobID:       b.cfg.MobID,
		Required:    b.cfg.NumOfTimes,
		Completed:   b.counter,
		Blacklisted: b.blacklist.GUIDs(),
		Outcome:     outcomeOf(b.done, status),
		StartedAt:   b.startedAt,
		FinishedAt:  b.now(),
	}
	if err := b.deps.Journal.RecordRun(ctx, sum); err != nil {
		slog.Warn("failed to record behavior run", "runID", b.runID, "error", err)
	}

	slog.Info("behavior finished",
		"behavior", InteractWithName,
		"runID", b.runID,
		"outcome", sum.Outcome,
		"counter", b.counter,
		"required", b.cfg.NumOfTimes,
		"blacklisted", b.blacklist.Len())
}

// IsDone reports whether the behavior finished: either the counter reached
// NumOfTimes on an earlier tick, or the quest is completed or gone from the log.
func (b *InteractWith) IsDone() bool {
	return IsComplete(b.done, b.deps.Quests.Status(b.cfg.QuestID))
}

// Tick runs one decision step. Executes at most one action.
func (b *InteractWith) Tick(ctx context.Context) {
	b.intention = model.IntentionIdle
	if ctx.Err() != nil || b.IsDone() {
		return
	}

	now := b.now()
	if !b.advanceWait(now) {
		return
	}

	target, found := SelectTarget(b.deps.Agent.VisibleObjects(b.cfg.ObjectType), b.cfg.Filter(), b.blacklist)
	if found && ai.IsDebugEnabled() {
		slog.Debug("interact target selected",
			"runID", b.runID,
			"name", target.Name,
			"guid", target.GUID,
			"distance", target.Distance,
			"inRange", target.InRange)
	}

	in := tickInput{
		counter:  b.counter,
		required: b.cfg.NumOfTimes,
		target:   target,
		found:    found,
	}
	if found && target.InRange {
		in.moving = b.deps.Agent.IsMoving()
	}

	b.intention = decide(in)
	switch b.intention {
	case model.IntentionComplete:
		b.done = true

	case model.IntentionMoveTo:
		b.setStatus("Moving to interact with - " + target.Name)
		b.deps.Agent.MoveTo(target.Location)

	case model.IntentionStop:
		b.setStatus("Interacting with - " + target.Name)
		b.deps.Agent.StopMoving()
		b.wait(now, phaseReady)

	case model.IntentionInteract:
		b.interact(ctx, now, target)

	case model.IntentionAdvance:
		b.counter++
		if ai.IsDebugEnabled() {
			slog.Debug("no interact target, advancing counter",
				"runID", b.runID,
				"counter", b.counter,
				"required", b.cfg.NumOfTimes)
		}
	}
}

func (b *InteractWith) interact(ctx context.Context, now time.Time, target model.VisibleObject) {
	b.setStatus("Interacting with - " + target.Name)

	err := b.deps.Agent.Interact(target.GUID)

	// The attempt is consumed even when the game rejects it, otherwise a
	// stuck object would be picked again on every tick.
	b.blacklist.Add(target.GUID)
	b.counter++
	b.wait(now, phaseAwaitingCooldown)

	if err != nil {
		slog.Debug("interaction failed",
			"runID", b.runID,
			"guid", target.GUID,
			"name", target.Name,
			"counter", b.counter,
			"error", err)
		return
	}

	rec := InteractionRecord{
		RunID:   b.runID,
		QuestID: b.cfg.QuestID,
		GUID:    target.GUID,
		Entry:   target.Entry,
		Name:    target.Name,
		Count:   b.counter,
		At:      now,
	}
	if err := b.deps.Journal.RecordInteraction(ctx, rec); err != nil {
		slog.Warn("failed to record interaction", "runID", b.runID, "guid", target.GUID, "error", err)
	}
}

// wait enters the settle phase for one lag duration; then goes to next.
func (b *InteractWith) wait(now time.Time, next waitPhase) {
	b.phase = phaseAwaitingSettle
	b.afterSettle = next
	b.resumeAt = now.Add(b.deps.Agent.LagDuration())
}

// advanceWait moves through elapsed wait phases.
// Returns true when the behavior is ready to decide.
func (b *InteractWith) advanceWait(now time.Time) bool {
	for b.phase != phaseReady {
		if now.Before(b.resumeAt) {
			return false
		}
		switch b.phase {
		case phaseAwaitingSettle:
			if b.afterSettle == phaseAwaitingCooldown {
				b.phase = phaseAwaitingCooldown
				b.resumeAt = b.resumeAt.Add(b.cooldown)
				continue
			}
			b.phase = phaseReady
		case phaseAwaitingCooldown:
			b.phase = phaseReady
		}
	}
	return true
}

func (b *InteractWith) setStatus(text string) {
	if text == b.lastStatus {
		return
	}
	b.lastStatus = text
	b.deps.Status.SetStatusText(text)
}
