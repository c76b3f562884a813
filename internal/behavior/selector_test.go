package behavior

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questbot/internal/model"
)

var herbFilter = TargetFilter{Type: model.ObjectTypeGameObject, Entry: 1618, MaxDistance: 100}

func TestSelectTarget(t *testing.T) {
	npc := herb(7, 1, true)
	npc.Type = model.ObjectTypeNpc

	otherEntry := herb(8, 2, true)
	otherEntry.Entry = 2041

	tests := []struct {
		name      string
		snapshot  []model.VisibleObject
		blacklist []uint64
		wantGUID  uint64
		wantFound bool
	}{
		{"empty snapshot", nil, nil, 0, false},
		{"single match", []model.VisibleObject{herb(1, 50, false)}, nil, 1, true},
		{"nearest wins", []model.VisibleObject{herb(1, 50, false), herb(2, 10, false), herb(3, 30, false)}, nil, 2, true},
		{"too far", []model.VisibleObject{herb(1, 150, false)}, nil, 0, false},
		{"exactly at max distance excluded", []model.VisibleObject{herb(1, 100, false)}, nil, 0, false},
		{"blacklisted skipped", []model.VisibleObject{herb(1, 5, true), herb(2, 40, false)}, []uint64{1}, 2, true},
		{"all blacklisted", []model.VisibleObject{herb(1, 5, true)}, []uint64{1}, 0, false},
		{"wrong type skipped", []model.VisibleObject{npc, herb(2, 60, false)}, nil, 2, true},
		{"wrong entry skipped", []model.VisibleObject{otherEntry}, nil, 0, false},
		{"tie resolves to first", []model.VisibleObject{herb(5, 20, false), herb(4, 20, false)}, nil, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bl := NewBlacklist()
			for _, guid := range tt.blacklist {
				bl.Add(guid)
			}
			got, found := SelectTarget(tt.snapshot, herbFilter, bl)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantGUID, got.GUID)
			}
		})
	}
}

func TestSelectTarget_NilBlacklist(t *testing.T) {
	got, found := SelectTarget([]model.VisibleObject{herb(1, 5, true)}, herbFilter, nil)
	require.True(t, found)
	assert.Equal(t, uint64(1), got.GUID)
}

// Random snapshots: selection never violates the filter or the blacklist,
// always returns a minimum, and is idempotent.
func TestSelectTarget_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1618))

	for range 500 {
		n := r.IntN(12)
		snapshot := make([]model.VisibleObject, 0, n)
		for i := range n {
			obj := herb(uint64(i+1), float64(r.IntN(200)), r.IntN(2) == 0)
			if r.IntN(4) == 0 {
				obj.Type = model.ObjectTypeNpc
			}
			if r.IntN(4) == 0 {
				obj.Entry = 9999
			}
			snapshot = append(snapshot, obj)
		}
		bl := NewBlacklist()
		for i := range n {
			if r.IntN(3) == 0 {
				bl.Add(uint64(i + 1))
			}
		}

		got, found := SelectTarget(snapshot, herbFilter, bl)
		again, foundAgain := SelectTarget(snapshot, herbFilter, bl)
		require.Equal(t, found, foundAgain)
		require.Equal(t, got, again)

		qualifying := 0
		for _, obj := range snapshot {
			if herbFilter.Matches(obj) && !bl.Contains(obj.GUID) {
				qualifying++
				if found {
					require.LessOrEqual(t, got.Distance, obj.Distance)
				}
			}
		}
		require.Equal(t, qualifying > 0, found)
		if found {
			require.False(t, bl.Contains(got.GUID))
			require.Less(t, got.Distance, herbFilter.MaxDistance)
			require.Equal(t, model.ObjectTypeGameObject, got.Type)
			require.Equal(t, uint32(1618), got.Entry)
		}
	}
}
