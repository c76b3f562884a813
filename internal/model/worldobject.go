package model

import "sync"

// WorldObject - базовый тип для всех объектов в мире, которые видит агент.
// GUID уникален для каждого экземпляра, Entry - ID шаблона (общий для всех копий).
type WorldObject struct {
	guid    uint64
	entry   uint32
	objType ObjectType
	name    string

	mu       sync.RWMutex
	location Location
}

// NewWorldObject создаёт новый объект в игровом мире.
func NewWorldObject(guid uint64, entry uint32, objType ObjectType, name string, loc Location) *WorldObject {
	return &WorldObject{
		guid:     guid,
		entry:    entry,
		objType:  objType,
		name:     name,
		location: loc,
	}
}

// GUID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) GUID() uint64 {
	return w.guid
}

// Entry returns the template ID shared by all copies of the object.
func (w *WorldObject) Entry() uint32 {
	return w.entry
}

// Type returns the object category.
func (w *WorldObject) Type() ObjectType {
	return w.objType
}

// Name возвращает имя объекта.
func (w *WorldObject) Name() string {
	return w.name
}

// Location возвращает копию координат объекта (value type).
func (w *WorldObject) Location() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetLocation устанавливает новые координаты объекта.
func (w *WorldObject) SetLocation(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}

// Visible builds the tick-scoped view of the object as seen from observer.
func (w *WorldObject) Visible(observer Location, interactRange float64) VisibleObject {
	loc := w.Location()
	dist := observer.Distance(loc)
	return VisibleObject{
		GUID:     w.guid,
		Entry:    w.entry,
		Type:     w.objType,
		Name:     w.name,
		Location: loc,
		Distance: dist,
		InRange:  dist <= interactRange,
	}
}

// VisibleObject is a snapshot of a world object taken for one tick.
// Distance and InRange are relative to the observing agent.
type VisibleObject struct {
	GUID     uint64
	Entry    uint32
	Type     ObjectType
	Name     string
	Location Location
	Distance float64
	InRange  bool
}
