package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintResults writes a summary of the test run, followed by every failed test and its errors.
func PrintResults(out io.Writer, results Results) {
	passed, failed, skipped := results.Counts()
	summary := fmt.Sprintf("%d passed, %d failed, %d skipped", passed, failed, skipped)
	if results.OK() {
		fmt.Fprintln(out, color.GreenString("All tests passed")+" ("+summary+")")
		return
	}
	fmt.Fprintln(out, color.New(color.FgRed, color.Bold).Sprint("FAILED TESTS")+" ("+summary+"):")
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  * %s\n", f.TestID)
		for _, e := range f.Errors {
			for _, line := range strings.Split(e.Error(), "\n") {
				fmt.Fprintf(out, "      %s\n", line)
			}
		}
	}
}
