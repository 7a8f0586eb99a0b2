package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/internal/config"
)

func writeProgram(t *testing.T, program []byte) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "test.ch8")
	require.NoError(t, os.WriteFile(name, program, 0o644))
	return name
}

func TestRun_DrawsGlyph(t *testing.T) {
	assert := assert.New(t)

	name := writeProgram(t, []byte{
		0x60, 0x0A, // LD V0, 0xA
		0xF0, 0x29, // LD F, V0
		0xD1, 0x15, // DRW V1, V1, 5
		0x12, 0x06, // JP 0x206
	})
	var out bytes.Buffer
	logger := config.NewLogger(&bytes.Buffer{}, false, false)
	require.NoError(t, run(optionFlags{program: name, ticks: 10, on: "#", off: "."}, logger, &out))

	lines := strings.Split(out.String(), "\n")
	assert.Equal("####", lines[0][:4])
	assert.Equal("#..#", lines[1][:4])
	assert.Equal("####", lines[2][:4])
	assert.Equal("#..#", lines[4][:4])
	assert.Equal(strings.Repeat(".", 64), lines[5])
}

func TestRun_Fault(t *testing.T) {
	name := writeProgram(t, []byte{0x50, 0x01})
	logger := config.NewLogger(&bytes.Buffer{}, false, true)
	err := run(optionFlags{program: name, ticks: 1, on: "#", off: "."}, logger, &bytes.Buffer{})
	assert.True(t, errors.Is(err, internal.ErrUnsupportedOpcode))
}

func TestRun_TooLarge(t *testing.T) {
	name := writeProgram(t, make([]byte, internal.MaxProgramSize+1))
	logger := config.NewLogger(&bytes.Buffer{}, false, true)
	err := run(optionFlags{program: name, ticks: 1, on: "#", off: "."}, logger, &bytes.Buffer{})
	assert.True(t, errors.Is(err, internal.ErrLoadTooLarge))
}

func TestPixelRune(t *testing.T) {
	assert := assert.New(t)

	r, err := pixelRune("█")
	assert.NoError(err)
	assert.Equal('█', r)

	_, err = pixelRune("ab")
	assert.Error(err)
	_, err = pixelRune("")
	assert.Error(err)
}
