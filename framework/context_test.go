package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggedEvent struct {
	kind   string
	id     string
	detail string
}

type recordingTestLogger struct {
	events      []loggedEvent
	debugOutput map[string]CapturedOutput
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, loggedEvent{"started", id.String(), ""})
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, loggedEvent{"error", id.String(), err.Error()})
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	detail := "passed"
	if failed {
		detail = "failed"
	}
	r.events = append(r.events, loggedEvent{"finished", id.String(), detail})
	if r.debugOutput == nil {
		r.debugOutput = make(map[string]CapturedOutput)
	}
	r.debugOutput[id.String()] = debugOutput
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, loggedEvent{"skipped", id.String(), reason})
}

func testIDs(results []TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func TestPassingSubtests(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) {})
		})
		c.Run("c", func(c *Context) {})
	})

	assert.True(t, results.OK())
	assert.Equal(t, []string{"a/b", "a", "c"}, testIDs(results.Tests))
	passed, failed, skipped := results.Counts()
	assert.Equal(t, 3, passed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, []loggedEvent{
		{"started", "a", ""},
		{"started", "a/b", ""},
		{"finished", "a/b", "passed"},
		{"finished", "a", "passed"},
		{"started", "c", ""},
		{"finished", "c", "passed"},
	}, logger.events)
}

func TestErrorfDoesNotStopTest(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Errorf("problem %d", 1)
			c.Errorf("problem %d", 2)
			assert.True(t, c.Failed())
			reachedEnd = true
		})
	})

	assert.True(t, reachedEnd)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "a", results.Failures[0].TestID.String())
	assert.Equal(t, []error{errors.New("problem 1"), errors.New("problem 2")}, results.Failures[0].Errors)
}

func TestRequireStopsTestButNotSiblings(t *testing.T) {
	reachedEnd, siblingRan := false, false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			require.Equal(c, 1, 2)
			reachedEnd = true
		})
		c.Run("b", func(c *Context) {
			siblingRan = true
		})
	})

	assert.False(t, reachedEnd)
	assert.True(t, siblingRan)
	assert.Equal(t, []string{"a"}, testIDs(results.Failures))
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "Not equal")
}

func TestFailNowWithoutMessage(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) { c.FailNow() })
	})

	require.Len(t, results.Failures, 1)
	assert.Equal(t, []error{errors.New("test failed with no failure message")}, results.Failures[0].Errors)
	assert.Contains(t, logger.events, loggedEvent{"finished", "a", "failed"})
}

func TestFailedSubtestDoesNotFailParent(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("parent", func(c *Context) {
			c.Run("child", func(c *Context) { c.Errorf("bad") })
		})
	})

	assert.Equal(t, []string{"parent/child"}, testIDs(results.Failures))
}

func TestUnexpectedPanic(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { panic("boom") })
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	reachedEnd := false
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.SkipWithReason("not configured")
			reachedEnd = true
		})
		c.Run("b", func(c *Context) { c.Skip() })
	})

	assert.False(t, reachedEnd)
	assert.True(t, results.OK())
	_, _, skipped := results.Counts()
	assert.Equal(t, 2, skipped)
	assert.Contains(t, logger.events, loggedEvent{"skipped", "a", "not configured"})
	assert.Contains(t, logger.events, loggedEvent{"skipped", "b", ""})
}

func TestDeferRunsInReverseOrderEvenOnFailure(t *testing.T) {
	var calls []string
	Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Defer(func() { calls = append(calls, "first") })
			c.Defer(func() { calls = append(calls, "second") })
			c.FailNow()
		})
	})

	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^b$"))

	logger := &recordingTestLogger{}
	ran := false
	results := Run(filters.AsFilter, logger, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) { ran = true })
	})

	assert.False(t, ran)
	assert.Equal(t, []string{"a"}, testIDs(results.Tests))
	assert.Contains(t, logger.events, loggedEvent{"skipped", "b", "excluded by filter parameters"})
}

func TestDebugOutputIsPassedToLogger(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("hello %s", "world")
			c.DebugLogger().Printf("second")
		})
	})

	output := logger.debugOutput["a"]
	require.Len(t, output, 2)
	assert.Equal(t, "hello world", output[0].Message)
	assert.Equal(t, "second", output[1].Message)
}

func TestContextID(t *testing.T) {
	var id TestID
	Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) { id = c.ID() })
		})
	})
	assert.Equal(t, []string{"a", "b"}, id.Path)
}
