package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Display constants
const (
	ScreenWidth  = 64
	ScreenHeight = 32

	// KeyCount is the size of the hexadecimal keypad.
	KeyCount = 16
)

// Framebuffer is a 64 px x 32 px monochrome display, indexed [x][y].
// Each cell holds 0 or 1.
type Framebuffer [ScreenWidth][ScreenHeight]uint8

// At reports whether the pixel at (x, y) is lit.
func (fb *Framebuffer) At(x, y int) bool {
	return fb[x][y] == 1
}

// Snapshot is the result of a single tick as seen by the output and audio sinks.
type Snapshot struct {
	Pixels  Framebuffer // Copy of the display after the tick
	Changed bool        // A clear or draw executed during the tick
	Beep    bool        // Sound timer is active
}

// Option configures a C8VM.
type Option func(*C8VM)

// WithRand sets the random source used by the RND instruction.
func WithRand(rng *rand.Rand) Option {
	return func(vm *C8VM) {
		vm.rng = rng
	}
}

// WithLogger sets the logger for VM diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(vm *C8VM) {
		vm.logger = logger
	}
}

// C8VM is an emulated CHIP-8 VM. It is not safe for concurrent use.
type C8VM struct {
	regV       [16]uint8          // 16 general purpose 8-bit registers
	regI       uint16             // 16-bit register that is generally used to store memory addresses
	delayTimer uint8              // Delay timer
	soundTimer uint8              // Sound timer
	pc         uint16             // Program counter
	stack      callStack          // Return addresses
	memory     [TotalMemory]uint8 // 4 KB global memory

	keys    [KeyCount]bool // Keypad state of the current tick
	waitKey bool           // Fx0A is waiting for a key press
	waitReg uint8          // Register receiving the pressed key

	pixels  Framebuffer
	changed bool // Clear or draw executed this tick

	err error // Fault that halted the VM

	rng    *rand.Rand
	logger *log.Logger
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM
func NewC8VM(opts ...Option) (*C8VM, error) {
	vm := &C8VM{}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if vm.logger == nil {
		vm.logger = log.NewNop()
	}
	vm.Reset()
	return vm, nil
}

// Reset returns the VM to its power-on state. Programs must be loaded again.
func (vm *C8VM) Reset() {
	vm.regV = [16]uint8{}
	vm.regI = 0
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.pc = ProgramStart
	vm.stack = callStack{}
	vm.memory = [TotalMemory]uint8{}
	vm.keys = [KeyCount]bool{}
	vm.waitKey = false
	vm.waitReg = 0
	vm.pixels = Framebuffer{}
	vm.changed = false
	vm.err = nil
	vm.initFont()
}

// Tick performs one execution step with the given keypad snapshot.
// At most one instruction is executed. Any returned error is fatal and
// is returned again by every later call.
func (vm *C8VM) Tick(keys [KeyCount]bool) (Snapshot, error) {
	if vm.err != nil {
		return vm.snapshot(), vm.err
	}

	vm.keys = keys
	vm.changed = false

	if vm.waitKey {
		vm.resolveKeyWait()
		return vm.snapshot(), nil
	}

	dt, st := vm.delayTimer, vm.soundTimer
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}

	if err := vm.step(); err != nil {
		// A faulting tick leaves the timers as they were.
		vm.delayTimer, vm.soundTimer = dt, st
		vm.logger.Error("vm halted", log.String("pc", hex16(vm.pc)), log.Err(err))
		vm.err = &haltError{cause: err}
		return vm.snapshot(), vm.err
	}
	return vm.snapshot(), nil
}

// step fetches and executes the instruction at PC.
func (vm *C8VM) step() error {
	op, err := fetch(&vm.memory, vm.pc)
	if err != nil {
		return err
	}
	return vm.execute(op)
}

// resolveKeyWait stores the first pressed key in the latched register.
func (vm *C8VM) resolveKeyWait() {
	for key, pressed := range vm.keys {
		if !pressed {
			continue
		}
		vm.regV[vm.waitReg] = uint8(key)
		vm.waitKey = false
		vm.logger.Debug("key wait resolved",
			log.Int("register", int(vm.waitReg)),
			log.Int("key", key))
		return
	}
}

func (vm *C8VM) snapshot() Snapshot {
	return Snapshot{
		Pixels:  vm.pixels,
		Changed: vm.changed,
		Beep:    vm.soundTimer > 0,
	}
}

// PC returns the program counter
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// I returns the index register
func (vm *C8VM) I() uint16 {
	return vm.regI
}

// V returns general purpose register x
func (vm *C8VM) V(x uint8) uint8 {
	return vm.regV[x&0xF]
}

// SP returns the number of return addresses on the stack
func (vm *C8VM) SP() int {
	return vm.stack.depth()
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the value of ST
func (vm *C8VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// WaitingForKey reports whether Fx0A is blocking execution
func (vm *C8VM) WaitingForKey() bool {
	return vm.waitKey
}

// Pixels returns a copy of the display
func (vm *C8VM) Pixels() Framebuffer {
	return vm.pixels
}

func hex16(v uint16) string {
	return fmt.Sprintf("0x%04X", v)
}
