package harness

import "github.com/roach88/phonebook/internal/contact"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: the session ended cleanly and every
	// assertion held.
	Pass bool `json:"pass"`

	// Transcript is everything the session wrote to its output.
	Transcript string `json:"transcript"`

	// Records is the Directory as persisted when the session ended.
	Records []contact.Record `json:"records"`

	// Errors contains assertion and session failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Records: []contact.Record{},
		Errors:  []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Assertion validates the transcript or the persisted Directory.
type Assertion struct {
	// Type specifies the assertion type:
	// - "output_contains": transcript contains Text
	// - "output_not_contains": transcript does not contain Text
	// - "record_count": persisted Directory has Count records
	// - "record_at": persisted record at Index equals Record
	Type string `yaml:"type"`

	// Text is the expected substring (output_contains, output_not_contains).
	Text string `yaml:"text,omitempty"`

	// Count is the expected number of records (record_count).
	Count int `yaml:"count,omitempty"`

	// Index is the 0-based record position (record_at).
	Index int `yaml:"index,omitempty"`

	// Record is the expected record (record_at). All six fields are compared.
	Record *contact.Record `yaml:"record,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains    = "output_contains"
	AssertOutputNotContains = "output_not_contains"
	AssertRecordCount       = "record_count"
	AssertRecordAt          = "record_at"
)
