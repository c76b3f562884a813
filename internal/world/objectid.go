package world

import (
	"sync/atomic"

	"github.com/udisondev/questbot/internal/model"
)

// GUID high parts per object type. The low 48 bits are a per-type counter.
//
//	0xF130_xxxx_xxxx_xxxx: creatures (Npc)
//	0xF110_xxxx_xxxx_xxxx: game objects
const (
	guidHighNpc        uint64 = 0xF130 << 48
	guidHighGameObject uint64 = 0xF110 << 48
	guidLowMask        uint64 = 1<<48 - 1
)

// GUIDGenerator generates unique object GUIDs for spawned world objects.
type GUIDGenerator struct {
	nextNpc        atomic.Uint64
	nextGameObject atomic.Uint64
}

// NewGUIDGenerator creates a new GUID generator.
func NewGUIDGenerator() *GUIDGenerator {
	return &GUIDGenerator{}
}

// Next generates next unique GUID for the object type.
// Thread-safe via atomic increment.
func (g *GUIDGenerator) Next(t model.ObjectType) uint64 {
	if t == model.ObjectTypeGameObject {
		return guidHighGameObject | g.nextGameObject.Add(1)&guidLowMask
	}
	return guidHighNpc | g.nextNpc.Add(1)&guidLowMask
}

// TypeOfGUID returns the object type encoded in guid high part.
func TypeOfGUID(guid uint64) (model.ObjectType, bool) {
	switch guid &^ guidLowMask {
	case guidHighNpc:
		return model.ObjectTypeNpc, true
	case guidHighGameObject:
		return model.ObjectTypeGameObject, true
	default:
		return 0, false
	}
}
