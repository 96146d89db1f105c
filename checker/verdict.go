package checker

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Reasons reported by CheckHasData and CheckHasNoData for 2xx responses.
const (
	ReasonHasData = "has data"
	ReasonNoData  = "no data"
)

// Verdict is the result of a single check. A failed check is reported here rather than as an
// error, so that callers can collect many verdicts before deciding what to do with them.
type Verdict struct {
	Success bool
	// Reason is a short human-readable explanation: "has data", "no data", or a description of
	// the unexpected HTTP status.
	Reason string
	// Payload is the decoded response body. It is ldvalue.Null() if the status was not 2xx.
	Payload    ldvalue.Value
	StatusCode int
	URL        string
}

func (v Verdict) String() string {
	result := "failure"
	if v.Success {
		result = "success"
	}
	return fmt.Sprintf("%s (%s) [HTTP %d %s]", result, v.Reason, v.StatusCode, v.URL)
}

func statusReason(status int) string {
	return fmt.Sprintf("request failed with status code %d", status)
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// HasData reports whether a decoded body counts as containing data. Only a JSON object or array
// with at least one entry does; null, {}, [], an empty body, and bare scalars do not.
func HasData(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.ObjectType, ldvalue.ArrayType:
		return v.Count() > 0
	default:
		return false
	}
}
