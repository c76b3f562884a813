package world

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questbot/internal/model"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(Config{InteractRange: 5, Speed: 10, Lag: 100 * time.Millisecond, DespawnGameObjects: true},
		model.NewLocation(0, 0, 0))
}

func TestNew_Defaults(t *testing.T) {
	w := New(Config{}, model.NewLocation(1, 2, 3))

	assert.Equal(t, DefaultConfig().InteractRange, w.cfg.InteractRange)
	assert.Equal(t, DefaultConfig().Speed, w.cfg.Speed)
	assert.Equal(t, model.NewLocation(1, 2, 3), w.Position())
	assert.False(t, w.IsMoving())
	assert.Zero(t, w.ObjectCount())
}

func TestWorld_SpawnAndRemove(t *testing.T) {
	w := newTestWorld(t)

	herb := w.Spawn(1618, model.ObjectTypeGameObject, "Peacebloom", model.NewLocation(3, 0, 0))
	npc := w.Spawn(3100, model.ObjectTypeNpc, "Elder Mottled Boar", model.NewLocation(30, 0, 0))
	assert.Equal(t, 2, w.ObjectCount())

	got, ok := w.GetObject(herb.GUID())
	require.True(t, ok)
	assert.Same(t, herb, got)

	w.RemoveObject(npc.GUID())
	_, ok = w.GetObject(npc.GUID())
	assert.False(t, ok)
	assert.Equal(t, 1, w.ObjectCount())
}

func TestWorld_AddObjectDuplicate(t *testing.T) {
	w := newTestWorld(t)
	obj := model.NewWorldObject(77, 1, model.ObjectTypeNpc, "Guard", model.NewLocation(0, 0, 0))

	require.NoError(t, w.AddObject(obj))
	assert.Error(t, w.AddObject(obj))
}

func TestWorld_VisibleObjects(t *testing.T) {
	w := newTestWorld(t)
	w.Spawn(1618, model.ObjectTypeGameObject, "Peacebloom", model.NewLocation(3, 4, 0))
	w.Spawn(1618, model.ObjectTypeGameObject, "Peacebloom", model.NewLocation(60, 0, 0))
	w.Spawn(3100, model.ObjectTypeNpc, "Elder Mottled Boar", model.NewLocation(1, 0, 0))

	objs := w.VisibleObjects(model.ObjectTypeGameObject)
	require.Len(t, objs, 2)

	inRange := 0
	for _, o := range objs {
		assert.Equal(t, model.ObjectTypeGameObject, o.Type)
		if o.InRange {
			inRange++
			assert.InDelta(t, 5.0, o.Distance, 1e-9)
		}
	}
	assert.Equal(t, 1, inRange)

	assert.Len(t, w.VisibleObjects(model.ObjectTypeNpc), 1)
}

func TestWorld_MoveAndStep(t *testing.T) {
	w := newTestWorld(t)

	w.MoveTo(model.NewLocation(20, 0, 0))
	require.True(t, w.IsMoving())

	w.Step(time.Second)
	assert.InDelta(t, 10.0, w.Position().X, 1e-9)
	assert.True(t, w.IsMoving())

	w.Step(2 * time.Second)
	assert.Equal(t, model.NewLocation(20, 0, 0), w.Position())
	assert.False(t, w.IsMoving())
}

func TestWorld_StopMoving(t *testing.T) {
	w := newTestWorld(t)

	w.MoveTo(model.NewLocation(20, 0, 0))
	w.Step(500 * time.Millisecond)
	w.StopMoving()
	assert.False(t, w.IsMoving())

	pos := w.Position()
	w.Step(time.Second)
	assert.Equal(t, pos, w.Position())
}

func TestWorld_MoveToCurrentPosition(t *testing.T) {
	w := newTestWorld(t)
	w.MoveTo(w.Position())
	assert.False(t, w.IsMoving())
}

func TestWorld_Teleport(t *testing.T) {
	w := newTestWorld(t)
	w.MoveTo(model.NewLocation(100, 0, 0))

	w.Teleport(model.NewLocation(5, 5, 5))
	assert.Equal(t, model.NewLocation(5, 5, 5), w.Position())
	assert.False(t, w.IsMoving())
}

func TestWorld_Interact(t *testing.T) {
	w := newTestWorld(t)
	herb := w.Spawn(1618, model.ObjectTypeGameObject, "Peacebloom", model.NewLocation(3, 0, 0))
	far := w.Spawn(1618, model.ObjectTypeGameObject, "Peacebloom", model.NewLocation(50, 0, 0))
	npc := w.Spawn(3100, model.ObjectTypeNpc, "Wounded Sentinel", model.NewLocation(0, 4, 0))

	var hooked []uint64
	w.OnInteract(func(obj *model.WorldObject) { hooked = append(hooked, obj.GUID()) })

	t.Run("out of range", func(t *testing.T) {
		err := w.Interact(far.GUID())
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, ok := w.GetObject(far.GUID())
		assert.True(t, ok)
	})

	t.Run("unknown guid", func(t *testing.T) {
		assert.ErrorIs(t, w.Interact(12345), ErrObjectNotFound)
	})

	t.Run("game object despawns", func(t *testing.T) {
		require.NoError(t, w.Interact(herb.GUID()))
		_, ok := w.GetObject(herb.GUID())
		assert.False(t, ok)
		assert.ErrorIs(t, w.Interact(herb.GUID()), ErrObjectNotFound)
	})

	t.Run("npc stays", func(t *testing.T) {
		require.NoError(t, w.Interact(npc.GUID()))
		require.NoError(t, w.Interact(npc.GUID()))
		_, ok := w.GetObject(npc.GUID())
		assert.True(t, ok)
	})

	assert.Equal(t, []uint64{herb.GUID(), npc.GUID(), npc.GUID()}, hooked)
}

func TestWorld_InteractKeepsGameObjects(t *testing.T) {
	w := New(Config{InteractRange: 5, DespawnGameObjects: false}, model.NewLocation(0, 0, 0))
	chest := w.Spawn(2843, model.ObjectTypeGameObject, "Battered Chest", model.NewLocation(1, 1, 0))

	require.NoError(t, w.Interact(chest.GUID()))
	_, ok := w.GetObject(chest.GUID())
	assert.True(t, ok)
}

func TestWorld_LagDuration(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, 100*time.Millisecond, w.LagDuration())
}

func TestWorld_Run(t *testing.T) {
	w := New(Config{Speed: 1000}, model.NewLocation(0, 0, 0))
	w.MoveTo(model.NewLocation(10, 0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return !w.IsMoving() }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, model.NewLocation(10, 0, 0), w.Position())

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
