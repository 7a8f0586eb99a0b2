package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnafees/chopper/internal"
)

func TestRender(t *testing.T) {
	assert := assert.New(t)

	var fb internal.Framebuffer
	fb[0][0] = 1
	fb[63][31] = 1
	fb[2][1] = 1

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &fb, '#', '.'))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(lines, internal.ScreenHeight)
	for _, line := range lines {
		assert.Len(line, internal.ScreenWidth)
	}
	assert.Equal("#"+strings.Repeat(".", 63), lines[0])
	assert.Equal("..#"+strings.Repeat(".", 61), lines[1])
	assert.Equal(strings.Repeat(".", 63)+"#", lines[31])
}

func TestRender_Blank(t *testing.T) {
	var fb internal.Framebuffer
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &fb, '#', ' '))
	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 64)+"\n", 32), buf.String())
}
