package behavior

import (
	"context"
	"errors"
	"time"

	"github.com/udisondev/questbot/internal/model"
)

var errGone = errors.New("object is gone")

// fakeAgent records every command the behavior issues.
type fakeAgent struct {
	objects     []model.VisibleObject
	moving      bool
	lag         time.Duration
	interactErr error

	moves     []model.Location
	stops     int
	interacts []uint64
	queried   []model.ObjectType
}

func (a *fakeAgent) VisibleObjects(t model.ObjectType) []model.VisibleObject {
	a.queried = append(a.queried, t)
	return a.objects
}

func (a *fakeAgent) MoveTo(loc model.Location) {
	a.moves = append(a.moves, loc)
	a.moving = true
}

func (a *fakeAgent) IsMoving() bool { return a.moving }

func (a *fakeAgent) StopMoving() {
	a.stops++
	a.moving = false
}

func (a *fakeAgent) Interact(guid uint64) error {
	if a.interactErr != nil {
		return a.interactErr
	}
	a.interacts = append(a.interacts, guid)
	return nil
}

func (a *fakeAgent) LagDuration() time.Duration { return a.lag }

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingReporter struct {
	statuses []string
	goals    []string
}

func (r *recordingReporter) SetStatusText(text string) { r.statuses = append(r.statuses, text) }
func (r *recordingReporter) SetGoalText(text string)   { r.goals = append(r.goals, text) }

type recordingJournal struct {
	interactions []InteractionRecord
	runs         []RunSummary
	err          error
}

func (j *recordingJournal) RecordInteraction(_ context.Context, rec InteractionRecord) error {
	j.interactions = append(j.interactions, rec)
	return j.err
}

func (j *recordingJournal) RecordRun(_ context.Context, sum RunSummary) error {
	j.runs = append(j.runs, sum)
	return j.err
}

func herb(guid uint64, dist float64, inRange bool) model.VisibleObject {
	return model.VisibleObject{
		GUID:     guid,
		Entry:    1618,
		Type:     model.ObjectTypeGameObject,
		Name:     "Peacebloom",
		Location: model.NewLocation(dist, 0, 0),
		Distance: dist,
		InRange:  inRange,
	}
}
