package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)

	return buf.String()
}

// evaluateAssertion dispatches to the checker for a.Type.
func evaluateAssertion(result *Result, a Assertion) error {
	switch a.Type {
	case AssertOutputContains:
		return assertOutputContains(result.Transcript, a)
	case AssertOutputNotContains:
		return assertOutputNotContains(result.Transcript, a)
	case AssertRecordCount:
		return assertRecordCount(result, a)
	case AssertRecordAt:
		return assertRecordAt(result, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertOutputContains(transcript string, a Assertion) error {
	if strings.Contains(transcript, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("output containing %q", a.Text),
		Actual:   "not found in transcript",
	}
}

func assertOutputNotContains(transcript string, a Assertion) error {
	if !strings.Contains(transcript, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputNotContains,
		Expected: fmt.Sprintf("output without %q", a.Text),
		Actual:   fmt.Sprintf("found %d occurrence(s)", strings.Count(transcript, a.Text)),
	}
}

func assertRecordCount(result *Result, a Assertion) error {
	if len(result.Records) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertRecordCount,
		Expected: fmt.Sprintf("%d record(s)", a.Count),
		Actual:   fmt.Sprintf("%d record(s)", len(result.Records)),
	}
}

func assertRecordAt(result *Result, a Assertion) error {
	if a.Index >= len(result.Records) {
		return &AssertionError{
			Type:     AssertRecordAt,
			Expected: fmt.Sprintf("record at index %d: %s", a.Index, a.Record),
			Actual:   fmt.Sprintf("directory has %d record(s)", len(result.Records)),
		}
	}
	got := result.Records[a.Index]
	if got == *a.Record {
		return nil
	}
	return &AssertionError{
		Type:     AssertRecordAt,
		Expected: fmt.Sprintf("record at index %d: %s", a.Index, a.Record),
		Actual:   got.String(),
	}
}
