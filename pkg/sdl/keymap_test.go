package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeymaps_CoverKeypad(t *testing.T) {
	for name, km := range map[string]Keymap{"qwerty": QwertyKeymap, "hex": HexKeymap} {
		seen := map[uint8]bool{}
		for _, key := range km {
			seen[key] = true
		}
		assert.Len(t, seen, 16, name)
	}
}

func TestKeymap_Keys(t *testing.T) {
	assert := assert.New(t)

	state := make([]uint8, 512)
	state[sdl.SCANCODE_X] = 1
	state[sdl.SCANCODE_R] = 1
	state[sdl.SCANCODE_P] = 1

	keys := QwertyKeymap.Keys(state)
	for key, pressed := range keys {
		assert.Equal(key == 0x0 || key == 0xD, pressed, "key %X", key)
	}

	keys = HexKeymap.Keys(state)
	assert.False(keys[0x0])
	assert.False(keys[0xD])

	assert.Equal([16]bool{}, QwertyKeymap.Keys(nil))
}

func TestKeymapByName(t *testing.T) {
	assert := assert.New(t)

	km, err := KeymapByName("hex")
	assert.NoError(err)
	assert.Equal(uint8(0xA), km[sdl.SCANCODE_A])

	km, err = KeymapByName("qwerty")
	assert.NoError(err)
	assert.Equal(uint8(0x7), km[sdl.SCANCODE_A])

	_, err = KeymapByName("dvorak")
	assert.Error(err)
}
