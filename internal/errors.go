package internal

import (
	"github.com/pkg/errors"

	"github.com/mnafees/chopper/internal/translate"
)

var f = translate.From

var (
	// Load errors
	ErrLoadTooLarge = errors.New(f("program exceeds available memory"))
	// ErrCapacityExceeded is the name the loader contract uses for ErrLoadTooLarge.
	ErrCapacityExceeded = ErrLoadTooLarge

	// Execution errors
	ErrUnsupportedOpcode = errors.New(f("unsupported opcode"))
	ErrStackOverflow     = errors.New(f("stack overflow"))
	ErrStackUnderflow    = errors.New(f("stack underflow"))
	ErrAddressOutOfRange = errors.New(f("address out of range"))
	ErrHalted            = errors.New(f("vm halted"))
)

// UnsupportedOpcodeError reports an instruction word that matches no known pattern.
type UnsupportedOpcodeError struct {
	Opcode Opcode
	PC     uint16
}

func (e *UnsupportedOpcodeError) Error() string {
	return f("unsupported opcode 0x%04X at 0x%04X", uint16(e.Opcode), e.PC)
}

func (e *UnsupportedOpcodeError) Is(err error) bool {
	return err == ErrUnsupportedOpcode
}

// haltError wraps the fault that stopped the VM so later ticks keep reporting it.
type haltError struct {
	cause error
}

func (e *haltError) Error() string {
	return f("vm halted: %v", e.cause)
}

func (e *haltError) Unwrap() error { return e.cause }

func (e *haltError) Is(err error) bool {
	return err == ErrHalted
}
