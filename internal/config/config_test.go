package config

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := NewLogger(&buf, false, false)
	assert.Equal(log.InfoLevel, logger.Level())
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), "shown")

	buf.Reset()
	logger = NewLogger(&buf, true, true)
	assert.Equal(log.DebugLevel, logger.Level())
	logger.Debug("debug wins")
	assert.Contains(buf.String(), "debug wins")

	buf.Reset()
	logger = NewLogger(&buf, false, true)
	assert.Equal(log.ErrorLevel, logger.Level())
	logger.Info("quiet")
	logger.Error("failure")
	assert.NotContains(buf.String(), "quiet")
	assert.Contains(buf.String(), "failure")
}
