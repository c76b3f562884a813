package behavior

import "github.com/udisondev/questbot/internal/model"

// TargetFilter describes which visible objects qualify as interaction targets.
type TargetFilter struct {
	Type        model.ObjectType
	Entry       uint32
	MaxDistance float64
}

// Matches reports whether obj passes the type, entry and distance checks.
// Distance is exclusive: an object exactly at MaxDistance does not qualify.
func (f TargetFilter) Matches(obj model.VisibleObject) bool {
	return obj.Type == f.Type &&
		obj.Entry == f.Entry &&
		obj.Distance < f.MaxDistance
}

// SelectTarget picks the nearest object matching filter whose GUID is not blacklisted.
// Ties on distance resolve to the object that comes first in snapshot.
// Returns false when nothing qualifies, including an empty snapshot.
func SelectTarget(snapshot []model.VisibleObject, filter TargetFilter, blacklist *Blacklist) (model.VisibleObject, bool) {
	var (
		best  model.VisibleObject
		found bool
	)
	for _, obj := range snapshot {
		if !filter.Matches(obj) || blacklist.Contains(obj.GUID) {
			continue
		}
		if !found || obj.Distance < best.Distance {
			best = obj
			found = true
		}
	}
	return best, found
}
