package internal

import "fmt"

// Opcode is a raw 16-bit big-endian CHIP-8 instruction word.
type Opcode uint16

// fetch decodes the instruction word stored at addr.
func fetch(mem *[TotalMemory]uint8, addr uint16) (Opcode, error) {
	if err := checkRange(addr, 2); err != nil {
		return 0, err
	}
	return Opcode(uint16(mem[addr])<<8 | uint16(mem[addr+1])), nil
}

// Nibble returns the upper 4 bits of the instruction, the dispatch key.
func (op Opcode) Nibble() uint8 { return uint8(op >> 12) }

// X returns the lower 4 bits of the high byte of the instruction.
func (op Opcode) X() uint8 { return uint8(op>>8) & 0xF }

// Y returns the upper 4 bits of the low byte of the instruction.
func (op Opcode) Y() uint8 { return uint8(op>>4) & 0xF }

// N returns the lowest 4 bits of the instruction.
func (op Opcode) N() uint8 { return uint8(op) & 0xF }

// KK returns the lowest 8 bits of the instruction.
func (op Opcode) KK() uint8 { return uint8(op) }

// NNN returns the lowest 12 bits of the instruction.
func (op Opcode) NNN() uint16 { return uint16(op) & 0x0FFF }

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}
