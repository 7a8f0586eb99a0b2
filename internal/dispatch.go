package internal

import (
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// execute applies a decoded instruction to the VM state. Either the whole
// instruction takes effect or an error is returned and nothing changed.
func (vm *C8VM) execute(op Opcode) error {
	x := op.X()
	y := op.Y()
	n := op.N()
	kk := op.KK()
	nnn := op.NNN()

	switch op.Nibble() {
	case 0x0:
		switch nnn {
		case 0x0E0: // CLS
			vm.pixels = Framebuffer{}
			vm.changed = true
		case 0x0EE: // RET
			addr, err := vm.stack.pop()
			if err != nil {
				return errors.Wrapf(err, "RET at %s", hex16(vm.pc))
			}
			vm.pc = addr
			return nil
		default: // SYS nnn, native machine code is not emulated
		}
	case 0x1: // JP nnn
		vm.pc = nnn
		return nil
	case 0x2: // CALL nnn
		if err := vm.stack.push(vm.pc + 2); err != nil {
			return errors.Wrapf(err, "CALL at %s", hex16(vm.pc))
		}
		vm.pc = nnn
		return nil
	case 0x3: // SE Vx, kk
		vm.skipIf(vm.regV[x] == kk)
	case 0x4: // SNE Vx, kk
		vm.skipIf(vm.regV[x] != kk)
	case 0x5: // SE Vx, Vy
		if n != 0 {
			return vm.unsupported(op)
		}
		vm.skipIf(vm.regV[x] == vm.regV[y])
	case 0x6: // LD Vx, kk
		vm.regV[x] = kk
	case 0x7: // ADD Vx, kk
		vm.regV[x] += kk
	case 0x8:
		if err := vm.alu(op, x, y, n); err != nil {
			return err
		}
	case 0x9: // SNE Vx, Vy
		if n != 0 {
			return vm.unsupported(op)
		}
		vm.skipIf(vm.regV[x] != vm.regV[y])
	case 0xA: // LD I, nnn
		vm.regI = nnn
	case 0xB: // JP V0, nnn
		vm.pc = nnn + uint16(vm.regV[0])
		return nil
	case 0xC: // RND Vx, kk
		vm.regV[x] = uint8(vm.rng.Intn(256)) & kk
	case 0xD: // DRW Vx, Vy, n
		if err := vm.drawSprite(vm.regV[x], vm.regV[y], n); err != nil {
			return err
		}
	case 0xE:
		pressed := vm.keys[vm.regV[x]&0xF]
		switch kk {
		case 0x9E: // SKP Vx
			vm.skipIf(pressed)
		case 0xA1: // SKNP Vx
			vm.skipIf(!pressed)
		default:
			return vm.unsupported(op)
		}
	case 0xF:
		if err := vm.misc(op, x, kk); err != nil {
			return err
		}
	}

	vm.pc += 2
	return nil
}

// alu executes the 8xyN register to register operations.
// VF is written after the result so the flag survives when x is 0xF.
func (vm *C8VM) alu(op Opcode, x, y, n uint8) error {
	vx, vy := vm.regV[x], vm.regV[y]
	var flag uint8

	switch n {
	case 0x0: // LD Vx, Vy
		vm.regV[x] = vy
		return nil
	case 0x1: // OR Vx, Vy
		vm.regV[x] = vx | vy
		return nil
	case 0x2: // AND Vx, Vy
		vm.regV[x] = vx & vy
		return nil
	case 0x3: // XOR Vx, Vy
		vm.regV[x] = vx ^ vy
		return nil
	case 0x4: // ADD Vx, Vy
		sum := uint16(vx) + uint16(vy)
		vm.regV[x] = uint8(sum)
		flag = boolToFlag(sum > 0xFF)
	case 0x5: // SUB Vx, Vy
		vm.regV[x] = vx - vy
		flag = boolToFlag(vx >= vy)
	case 0x6: // SHR Vx, Vy
		vm.regV[x] = vy >> 1
		flag = vy & 0x1
	case 0x7: // SUBN Vx, Vy
		vm.regV[x] = vy - vx
		flag = boolToFlag(vy >= vx)
	case 0xE: // SHL Vx, Vy
		vm.regV[x] = vy << 1
		flag = vy >> 7
	default:
		return vm.unsupported(op)
	}

	vm.regV[0xF] = flag
	return nil
}

// misc executes the FxKK timer, keyboard and memory operations.
func (vm *C8VM) misc(op Opcode, x, kk uint8) error {
	switch kk {
	case 0x07: // LD Vx, DT
		vm.regV[x] = vm.delayTimer
	case 0x0A: // LD Vx, K
		vm.waitKey = true
		vm.waitReg = x
		vm.logger.Debug("waiting for key", log.Int("register", int(x)), log.String("pc", hex16(vm.pc)))
	case 0x15: // LD DT, Vx
		vm.delayTimer = vm.regV[x]
	case 0x18: // LD ST, Vx
		vm.soundTimer = vm.regV[x]
	case 0x1E: // ADD I, Vx
		sum := vm.regI + uint16(vm.regV[x])
		vm.regI = sum & 0x0FFF
		vm.regV[0xF] = boolToFlag(sum > 0x0FFF)
	case 0x29: // LD F, Vx
		vm.regI = uint16(vm.regV[x]) * fontGlyphSize
	case 0x33: // LD B, Vx
		if err := checkRange(vm.regI, 3); err != nil {
			return err
		}
		v := vm.regV[x]
		vm.memory[vm.regI] = v / 100
		vm.memory[vm.regI+1] = (v / 10) % 10
		vm.memory[vm.regI+2] = v % 10
	case 0x55: // LD [I], Vx
		if err := checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.memory[vm.regI:], vm.regV[:x+1])
	case 0x65: // LD Vx, [I]
		if err := checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.regV[:x+1], vm.memory[vm.regI:])
	default:
		return vm.unsupported(op)
	}
	return nil
}

// drawSprite XORs an n byte sprite read from I onto the display at (x, y),
// wrapping at the screen edges. VF is set if any lit pixel was erased.
func (vm *C8VM) drawSprite(x, y, n uint8) error {
	if err := checkRange(vm.regI, int(n)); err != nil {
		return err
	}

	var collision bool
	for row := 0; row < int(n); row++ {
		spriteByte := vm.memory[int(vm.regI)+row]
		py := (int(y) + row) % ScreenHeight
		for col := 0; col < 8; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}
			px := &vm.pixels[(int(x)+col)%ScreenWidth][py]
			if *px == 1 {
				collision = true
			}
			*px ^= 1
		}
	}

	vm.regV[0xF] = boolToFlag(collision)
	vm.changed = true
	return nil
}

func (vm *C8VM) skipIf(cond bool) {
	if cond {
		vm.pc += 2
	}
}

func (vm *C8VM) unsupported(op Opcode) error {
	return &UnsupportedOpcodeError{Opcode: op, PC: vm.pc}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
