package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultCompareField is the field compared when no field path is given.
const DefaultCompareField = "name"

type OutcomeKind int

const (
	Match OutcomeKind = iota + 1
	Mismatch
	NotFound
)

func (k OutcomeKind) String() string {
	switch k {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of comparing a field across two endpoints.
//
// For Match, ValueA and ValueB are equal. For Mismatch they differ; a field that is absent from
// a response is reported as an empty string. For NotFound, MissingFrom is the endpoint that
// returned a non-2xx status and Status is that status.
type Outcome struct {
	Kind        OutcomeKind
	Field       string
	ValueA      string
	ValueB      string
	MissingFrom Endpoint
	Status      int
}

// Value returns the agreed value of a Match.
func (o Outcome) Value() string {
	return o.ValueA
}

func (o Outcome) String() string {
	switch o.Kind {
	case Match:
		return fmt.Sprintf("%s %q on both endpoints", o.Field, o.ValueA)
	case Mismatch:
		return fmt.Sprintf("%s differs: %q vs %q", o.Field, o.ValueA, o.ValueB)
	case NotFound:
		return fmt.Sprintf("%s not found (status %d)", o.MissingFrom, o.Status)
	default:
		return o.Kind.String()
	}
}

// Comparator fetches the same identifier from two resource types and checks that a field agrees.
type Comparator struct {
	checker *Checker
}

func NewComparator(checker *Checker) *Comparator {
	return &Comparator{checker: checker}
}

// Compare fetches identifier from resourceTypeA and then resourceTypeB, and compares the value
// at fieldPath (a gjson path such as "name" or "species.name"; empty means DefaultCompareField).
//
// A non-2xx status from either endpoint yields a NotFound outcome rather than an error, and the
// second endpoint is not queried if the first one is missing. Transport and parse failures are
// returned as errors.
func (c *Comparator) Compare(
	ctx context.Context,
	identifier, resourceTypeA, resourceTypeB, fieldPath string,
) (outcome Outcome, err error) {
	if fieldPath == "" {
		fieldPath = DefaultCompareField
	}
	start := time.Now()
	defer func() {
		verdict := Verdict{Success: outcome.Kind == Match, Reason: outcome.String(), Payload: ldvalue.Null()}
		if err != nil {
			verdict.Reason = err.Error()
		}
		c.checker.observe(CheckNameCompare, verdict, err, start)
	}()

	a, found, err := c.fetchField(ctx, resourceTypeA, identifier, fieldPath)
	if err != nil {
		return Outcome{}, err
	}
	if !found.isZero() {
		return notFound(fieldPath, found), nil
	}
	b, found, err := c.fetchField(ctx, resourceTypeB, identifier, fieldPath)
	if err != nil {
		return Outcome{}, err
	}
	if !found.isZero() {
		return notFound(fieldPath, found), nil
	}

	outcome = Outcome{Field: fieldPath, ValueA: a.String(), ValueB: b.String()}
	if a.Exists() && b.Exists() && sameJSON(a, b) {
		outcome.Kind = Match
		c.checker.logger.Printf("%s %q matches across %s and %s", fieldPath, a.String(), resourceTypeA, resourceTypeB)
	} else {
		outcome.Kind = Mismatch
		c.checker.logger.Printf("%s differs for %s: %s=%q, %s=%q",
			fieldPath, identifier, resourceTypeA, a.String(), resourceTypeB, b.String())
	}
	return outcome, nil
}

type missing struct {
	endpoint Endpoint
	status   int
}

func (m missing) isZero() bool {
	return m.status == 0
}

func notFound(fieldPath string, m missing) Outcome {
	return Outcome{Kind: NotFound, Field: fieldPath, MissingFrom: m.endpoint, Status: m.status}
}

func (c *Comparator) fetchField(
	ctx context.Context,
	resourceType, identifier, fieldPath string,
) (gjson.Result, missing, error) {
	result, err := c.checker.FetchAndDecode(ctx, resourceType, identifier)
	if err != nil {
		return gjson.Result{}, missing{}, err
	}
	if !isSuccessStatus(result.StatusCode) {
		c.checker.logger.Printf("Unable to retrieve data from %s (status %d)", result.URL, result.StatusCode)
		return gjson.Result{}, missing{endpoint: c.checker.Endpoint(resourceType, identifier), status: result.StatusCode}, nil
	}
	return gjson.GetBytes(result.Body, fieldPath), missing{}, nil
}

// sameJSON compares two values structurally, so object key order and whitespace do not matter.
func sameJSON(a, b gjson.Result) bool {
	return ldvalue.Parse([]byte(a.Raw)).Equal(ldvalue.Parse([]byte(b.Raw)))
}
