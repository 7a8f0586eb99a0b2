package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	s := &callStack{}
	assert.NoError(s.push(0x202))
	assert.NoError(s.push(0x340))
	assert.Equal(2, s.depth())

	addr, err := s.pop()
	assert.NoError(err)
	assert.Equal(uint16(0x340), addr)

	addr, err = s.pop()
	assert.NoError(err)
	assert.Equal(uint16(0x202), addr)
	assert.Equal(0, s.depth())
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	s := &callStack{}
	for i := 0; i < StackDepth; i++ {
		assert.NoError(s.push(uint16(i)))
	}
	err := s.push(0xFFF)
	assert.True(errors.Is(err, ErrStackOverflow))
	assert.Equal(StackDepth, s.depth())
}

func TestStack_Underflow(t *testing.T) {
	assert := assert.New(t)

	s := &callStack{}
	addr, err := s.pop()
	assert.True(errors.Is(err, ErrStackUnderflow))
	assert.Equal(uint16(0), addr)
	assert.Equal(0, s.depth())
}
