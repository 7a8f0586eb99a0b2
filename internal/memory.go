package internal

import (
	"os"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// Memory layout constants
const (
	TotalMemory    = 0x1000
	ProgramStart   = 0x200
	MaxProgramSize = TotalMemory - ProgramStart

	fontGlyphSize = 5
)

// fontset holds the hexadecimal digit glyphs 0-F stored at address 0.
var fontset = [16 * fontGlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// initFont writes the glyph table to the bottom of memory.
func (vm *C8VM) initFont() {
	copy(vm.memory[:], fontset[:])
}

// Load copies a program image into memory at ProgramStart.
// Memory is left untouched if the image does not fit.
func (vm *C8VM) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return errors.Wrap(ErrLoadTooLarge, f("%d bytes, %d available", len(program), MaxProgramSize))
	}
	copy(vm.memory[ProgramStart:], program)
	vm.logger.Debug("program loaded",
		log.Int("size", len(program)),
		log.String("start", hex16(ProgramStart)))
	return nil
}

// LoadProgram loads a given CHIP-8 program file into the VM's memory
func (vm *C8VM) LoadProgram(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, f("loading program"))
	}
	return errors.Wrapf(vm.Load(data), "%s", filename)
}

// Memory returns a copy of the address space.
func (vm *C8VM) Memory() [TotalMemory]uint8 {
	return vm.memory
}

// checkRange verifies that size bytes starting at addr are addressable.
func checkRange(addr uint16, size int) error {
	if int(addr)+size > TotalMemory {
		return errors.Wrapf(ErrAddressOutOfRange, "0x%04X+%d", addr, size)
	}
	return nil
}
