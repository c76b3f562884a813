// Package world is an in-memory game world for running quest behaviors without a game client.
// It keeps the object registry, one controlled avatar with simple straight-line movement,
// and implements the behavior.Agent contract on top of them.
package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/questbot/internal/model"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrOutOfRange     = errors.New("object out of interaction range")
)

// Config holds world simulation parameters.
type Config struct {
	InteractRange float64       // max distance for Interact
	Speed         float64       // avatar speed, units per second
	Lag           time.Duration // reported lag compensation delay
	// DespawnGameObjects removes game objects after a successful interaction (herbs, chests).
	DespawnGameObjects bool
}

// DefaultConfig returns world config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InteractRange:      5,
		Speed:              7,
		Lag:                250 * time.Millisecond,
		DespawnGameObjects: true,
	}
}

// InteractHook is called after every successful interaction.
type InteractHook func(obj *model.WorldObject)

// World represents the simulated game world around the avatar.
type World struct {
	cfg     Config
	guids   *GUIDGenerator
	objects sync.Map // map[uint64]*model.WorldObject: guid → object

	mu          sync.RWMutex
	position    model.Location
	destination model.Location
	moving      bool
	hooks       []InteractHook
}

// New creates a world with the avatar standing at start.
func New(cfg Config, start model.Location) *World {
	if cfg.InteractRange <= 0 {
		cfg.InteractRange = DefaultConfig().InteractRange
	}
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultConfig().Speed
	}
	return &World{
		cfg:      cfg,
		guids:    NewGUIDGenerator(),
		position: start,
	}
}

// Spawn creates a new object with a fresh GUID and adds it to the world.
func (w *World) Spawn(entry uint32, t model.ObjectType, name string, loc model.Location) *model.WorldObject {
	obj := model.NewWorldObject(w.guids.Next(t), entry, t, name, loc)
	w.objects.Store(obj.GUID(), obj)
	return obj
}

// AddObject adds an existing object. Returns error if the GUID is taken.
func (w *World) AddObject(obj *model.WorldObject) error {
	if _, loaded := w.objects.LoadOrStore(obj.GUID(), obj); loaded {
		return fmt.Errorf("object %#x already in world", obj.GUID())
	}
	return nil
}

// RemoveObject removes object from world.
func (w *World) RemoveObject(guid uint64) {
	w.objects.Delete(guid)
}

// GetObject returns object by GUID.
func (w *World) GetObject(guid uint64) (*model.WorldObject, bool) {
	value, ok := w.objects.Load(guid)
	if !ok {
		return nil, false
	}
	return value.(*model.WorldObject), true
}

// ObjectCount returns total number of objects in world (O(N)).
func (w *World) ObjectCount() int {
	count := 0
	w.objects.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

// OnInteract registers a hook fired after each successful interaction.
func (w *World) OnInteract(hook InteractHook) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hooks = append(w.hooks, hook)
}

// Position returns avatar position.
func (w *World) Position() model.Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.position
}

// Teleport places the avatar at loc and cancels movement.
func (w *World) Teleport(loc model.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.position = loc
	w.moving = false
}

// VisibleObjects returns all objects of type t as seen from the avatar.
func (w *World) VisibleObjects(t model.ObjectType) []model.VisibleObject {
	pos := w.Position()
	out := make([]model.VisibleObject, 0, 16)
	w.objects.Range(func(_, value any) bool {
		obj := value.(*model.WorldObject)
		if obj.Type() == t {
			out = append(out, obj.Visible(pos, w.cfg.InteractRange))
		}
		return true
	})
	return out
}

// MoveTo sets avatar destination. Movement happens in Step.
func (w *World) MoveTo(loc model.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destination = loc
	w.moving = w.position != loc
}

// IsMoving reports whether the avatar walks toward a destination.
func (w *World) IsMoving() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.moving
}

// StopMoving cancels current movement.
func (w *World) StopMoving() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.moving = false
}

// LagDuration returns the configured lag compensation delay.
func (w *World) LagDuration() time.Duration {
	return w.cfg.Lag
}

// Interact interacts with object guid if it exists and is in range.
func (w *World) Interact(guid uint64) error {
	obj, ok := w.GetObject(guid)
	if !ok {
		return fmt.Errorf("interact %#x: %w", guid, ErrObjectNotFound)
	}

	pos := w.Position()
	if dist := pos.Distance(obj.Location()); dist > w.cfg.InteractRange {
		return fmt.Errorf("interact %s (%#x) at distance %.1f: %w", obj.Name(), guid, dist, ErrOutOfRange)
	}

	if w.cfg.DespawnGameObjects && obj.Type() == model.ObjectTypeGameObject {
		w.RemoveObject(guid)
	}

	w.mu.RLock()
	hooks := w.hooks
	w.mu.RUnlock()
	for _, hook := range hooks {
		hook(obj)
	}

	slog.Debug("interacted", "guid", guid, "entry", obj.Entry(), "name", obj.Name())
	return nil
}

// Step advances avatar movement by dt.
func (w *World) Step(dt time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.moving {
		return
	}
	w.position = w.position.MoveToward(w.destination, w.cfg.Speed*dt.Seconds())
	if w.position == w.destination {
		w.moving = false
	}
}

// Run steps movement every interval (blocks until context is canceled).
func (w *World) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("world simulation started", "interval", interval, "objects", w.ObjectCount())

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("world simulation stopping")
			return ctx.Err()

		case now := <-ticker.C:
			w.Step(now.Sub(last))
			last = now
		}
	}
}
