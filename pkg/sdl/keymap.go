package sdl

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mnafees/chopper/internal"
)

// Keymap maps host keyboard scancodes to CHIP-8 keypad keys.
type Keymap map[sdl.Scancode]uint8

// QwertyKeymap maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
var QwertyKeymap = Keymap{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// HexKeymap maps the digit keys 0-9 and letters A-F directly to the keypad.
var HexKeymap = Keymap{
	sdl.SCANCODE_0: 0x0, sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0x4, sdl.SCANCODE_5: 0x5, sdl.SCANCODE_6: 0x6, sdl.SCANCODE_7: 0x7,
	sdl.SCANCODE_8: 0x8, sdl.SCANCODE_9: 0x9, sdl.SCANCODE_A: 0xA, sdl.SCANCODE_B: 0xB,
	sdl.SCANCODE_C: 0xC, sdl.SCANCODE_D: 0xD, sdl.SCANCODE_E: 0xE, sdl.SCANCODE_F: 0xF,
}

// KeymapByName returns the keymap registered under name.
func KeymapByName(name string) (Keymap, error) {
	switch name {
	case "qwerty":
		return QwertyKeymap, nil
	case "hex":
		return HexKeymap, nil
	default:
		return nil, errors.Errorf("unknown keymap %q", name)
	}
}

// Keys converts a keyboard state array indexed by scancode into a keypad snapshot.
func (km Keymap) Keys(state []uint8) [internal.KeyCount]bool {
	var keys [internal.KeyCount]bool
	for code, key := range km {
		if int(code) < len(state) && state[code] != 0 {
			keys[key] = true
		}
	}
	return keys
}
