package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOpcode_Fields(t *testing.T) {
	assert := assert.New(t)

	op := Opcode(0xD12F)
	assert.Equal(uint8(0xD), op.Nibble())
	assert.Equal(uint8(0x1), op.X())
	assert.Equal(uint8(0x2), op.Y())
	assert.Equal(uint8(0xF), op.N())
	assert.Equal(uint8(0x2F), op.KK())
	assert.Equal(uint16(0x12F), op.NNN())
	assert.Equal("D12F", op.String())
}

func TestOpcode_FieldsMasked(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint16{0x0000, 0xFFFF, 0x8A5E, 0xF165} {
		op := Opcode(word)
		assert.LessOrEqual(op.X(), uint8(0xF))
		assert.LessOrEqual(op.Y(), uint8(0xF))
		assert.LessOrEqual(op.N(), uint8(0xF))
		assert.LessOrEqual(op.NNN(), uint16(0xFFF))
	}
}

func TestFetch(t *testing.T) {
	assert := assert.New(t)

	var mem [TotalMemory]uint8
	mem[0x200] = 0xA2
	mem[0x201] = 0xF0

	op, err := fetch(&mem, 0x200)
	assert.NoError(err)
	assert.Equal(Opcode(0xA2F0), op)

	_, err = fetch(&mem, TotalMemory-1)
	assert.True(errors.Is(err, ErrAddressOutOfRange))
}
