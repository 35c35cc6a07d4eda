package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainSet_AddContains(t *testing.T) {
	t.Parallel()

	s := NewChainSet()
	assert.False(t, s.Contains(270))

	s.Add(270)
	s.Add(271)
	s.Add(270) // duplicates collapse

	assert.True(t, s.Contains(270))
	assert.True(t, s.Contains(271))
	assert.Len(t, s, 2)
}

func TestChainSet_IDsSorted(t *testing.T) {
	t.Parallel()

	s := NewChainSet(320, 270, 505, 271)

	assert.Equal(t, []ChainID{270, 271, 320, 505}, s.IDs())
}
