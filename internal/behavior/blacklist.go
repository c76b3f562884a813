package behavior

import "slices"

// Blacklist holds GUIDs of objects a behavior already interacted with.
// Grows monotonically for the lifetime of one behavior instance; there is no removal.
// Not safe for concurrent use.
type Blacklist struct {
	guids map[uint64]struct{}
}

// NewBlacklist creates an empty blacklist.
func NewBlacklist() *Blacklist {
	return &Blacklist{guids: make(map[uint64]struct{}, 8)}
}

// Add puts guid on the blacklist. Returns false if it was already there.
func (b *Blacklist) Add(guid uint64) bool {
	if _, ok := b.guids[guid]; ok {
		return false
	}
	b.guids[guid] = struct{}{}
	return true
}

// Contains reports whether guid is blacklisted.
// A nil blacklist contains nothing.
func (b *Blacklist) Contains(guid uint64) bool {
	if b == nil {
		return false
	}
	_, ok := b.guids[guid]
	return ok
}

// Len returns number of blacklisted objects.
func (b *Blacklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.guids)
}

// GUIDs returns blacklisted GUIDs in ascending order.
func (b *Blacklist) GUIDs() []uint64 {
	if b == nil {
		return nil
	}
	out := make([]uint64, 0, len(b.guids))
	for guid := range b.guids {
		out = append(out, guid)
	}
	slices.Sort(out)
	return out
}
