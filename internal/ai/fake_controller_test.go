package ai

import (
	"context"
	"sync"

	"github.com/udisondev/questbot/internal/model"
)

// fakeController finishes after doneAfter ticks (never when doneAfter is 0).
type fakeController struct {
	mu        sync.Mutex
	doneAfter int
	ticks     int
	starts    int
	stops     int
	log       *[]string
	name      string
}

func newFakeController(name string, doneAfter int, log *[]string) *fakeController {
	return &fakeController{name: name, doneAfter: doneAfter, log: log}
}

func (c *fakeController) record(event string) {
	if c.log != nil {
		*c.log = append(*c.log, c.name+":"+event)
	}
}

func (c *fakeController) Start(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.starts++
	c.record("start")
}

func (c *fakeController) Stop(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops++
	c.record("stop")
}

func (c *fakeController) Tick(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	c.record("tick")
}

func (c *fakeController) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doneAfter > 0 && c.ticks >= c.doneAfter
}

func (c *fakeController) CurrentIntention() model.Intention {
	if c.IsDone() {
		return model.IntentionComplete
	}
	return model.IntentionMoveTo
}

func (c *fakeController) counts() (starts, ticks, stops int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts, c.ticks, c.stops
}
