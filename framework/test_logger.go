package framework

// TestLogger receives notifications as tests start and finish. The CLI uses it to print
// progress to the console; unit tests can supply their own implementation to observe a run.
type TestLogger interface {
	TestStarted(id TestID)
	// TestError is called once for each failure recorded by a test, as it happens.
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}
