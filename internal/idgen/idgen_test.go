package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDUniqueAndIncreasing(t *testing.T) {
	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 1000; i++ {
		id := NextID()
		assert.Positive(t, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Greater(t, id, last)
		seen[id] = true
		last = id
	}
}
