package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintResults(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	pass := TestResult{TestID: TestID{Path: []string{"a"}}}
	skip := TestResult{TestID: TestID{Path: []string{"b"}}, Skipped: true}
	fail := TestResult{
		TestID: TestID{Path: []string{"c", "d"}},
		Errors: []error{errors.New("line one\nline two")},
	}

	t.Run("all passed", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResults(&buf, Results{Tests: []TestResult{pass, skip}})
		assert.Equal(t, "All tests passed (1 passed, 0 failed, 1 skipped)\n", buf.String())
	})

	t.Run("failures", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResults(&buf, Results{Tests: []TestResult{pass, fail}, Failures: []TestResult{fail}})
		assert.Equal(t, "FAILED TESTS (1 passed, 1 failed, 0 skipped):\n"+
			"  * c/d\n"+
			"      line one\n"+
			"      line two\n", buf.String())
	})
}

func TestTestIDPlusDoesNotShareStorage(t *testing.T) {
	parent := TestID{Path: make([]string, 1, 10)}
	parent.Path[0] = "p"
	a := parent.Plus("a")
	b := parent.Plus("b")
	assert.Equal(t, "p/a", a.String())
	assert.Equal(t, "p/b", b.String())
}
