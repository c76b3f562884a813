package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questbot/internal/model"
)

func TestGUIDGenerator_Next(t *testing.T) {
	g := NewGUIDGenerator()

	npc1 := g.Next(model.ObjectTypeNpc)
	npc2 := g.Next(model.ObjectTypeNpc)
	gob := g.Next(model.ObjectTypeGameObject)

	assert.NotEqual(t, npc1, npc2)
	assert.Equal(t, npc1+1, npc2)
	assert.NotEqual(t, npc1, gob)

	typ, ok := TypeOfGUID(npc1)
	require.True(t, ok)
	assert.Equal(t, model.ObjectTypeNpc, typ)

	typ, ok = TypeOfGUID(gob)
	require.True(t, ok)
	assert.Equal(t, model.ObjectTypeGameObject, typ)

	_, ok = TypeOfGUID(42)
	assert.False(t, ok)
}

func TestGUIDGenerator_Concurrent(t *testing.T) {
	g := NewGUIDGenerator()

	const workers, perWorker = 8, 100
	ids := make(chan uint64, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				ids <- g.Next(model.ObjectTypeGameObject)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate guid %#x", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}
