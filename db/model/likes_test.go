package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike(t *testing.T) {
	likes := ToggleLike(nil, 7)
	assert.Equal(t, []uint{7}, likes)

	likes = ToggleLike(likes, 3)
	assert.Equal(t, []uint{7, 3}, likes)

	// A second toggle by the same user removes the entry.
	likes = ToggleLike(likes, 7)
	assert.Equal(t, []uint{3}, likes)

	// Duplicate entries collapse on toggle.
	likes = ToggleLike([]uint{5, 5, 9}, 5)
	assert.Equal(t, []uint{9}, likes)
}
