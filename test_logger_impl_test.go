package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apicheck/api-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestConsoleTestLogger(t *testing.T) {
	withoutColor(t)
	id := framework.TestID{Path: []string{"species", "has data"}}
	debugOutput := framework.CapturedOutput{
		{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Message: "GET http://localhost/"},
	}

	t.Run("failure with debug output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{DebugOutputOnFailure: true, Out: &buf}
		logger.TestStarted(id)
		logger.TestError(id, errors.New("first line\nsecond line"))
		logger.TestFinished(id, true, debugOutput)

		assert.Equal(t, "[species/has data]\n"+
			"  first line\n"+
			"  second line\n"+
			"  FAILED: species/has data\n"+
			"    DEBUG [2024-01-02 03:04:05.000] GET http://localhost/\n",
			buf.String())
	})

	t.Run("success hides debug output by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{DebugOutputOnFailure: true, Out: &buf}
		logger.TestFinished(id, false, debugOutput)
		assert.Empty(t, buf.String())
	})

	t.Run("skipped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf}
		logger.TestSkipped(id, "")
		logger.TestSkipped(id, "excluded by filter parameters")
		assert.Equal(t, "  SKIPPED: species/has data\n"+
			"  SKIPPED: species/has data (excluded by filter parameters)\n", buf.String())
	})
}
