package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareWave_Fill(t *testing.T) {
	assert := assert.New(t)

	// 4 samples per period: two high, two low.
	w := newSquareWave(1, 4)
	buf := make([]byte, 8)
	w.fill(buf)

	amp := int8(amplitude)
	high, low := byte(amp), byte(-amp)
	assert.Equal([]byte{high, high, low, low, high, high, low, low}, buf)
}

func TestSquareWave_PhaseContinues(t *testing.T) {
	assert := assert.New(t)

	w := newSquareWave(1, 4)
	first := make([]byte, 3)
	w.fill(first)
	second := make([]byte, 1)
	w.fill(second)

	amp := int8(amplitude)
	high, low := byte(amp), byte(-amp)
	assert.Equal([]byte{high, high, low}, first)
	assert.Equal([]byte{low}, second)
}
