package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlacklist(t *testing.T) {
	bl := NewBlacklist()
	assert.Equal(t, 0, bl.Len())
	assert.False(t, bl.Contains(1))

	assert.True(t, bl.Add(30))
	assert.True(t, bl.Add(10))
	assert.False(t, bl.Add(30), "second Add of the same guid must report false")

	assert.True(t, bl.Contains(10))
	assert.True(t, bl.Contains(30))
	assert.False(t, bl.Contains(20))
	assert.Equal(t, 2, bl.Len())
	assert.Equal(t, []uint64{10, 30}, bl.GUIDs())
}

func TestBlacklist_Nil(t *testing.T) {
	var bl *Blacklist
	assert.False(t, bl.Contains(1))
	assert.Equal(t, 0, bl.Len())
	assert.Nil(t, bl.GUIDs())
}
