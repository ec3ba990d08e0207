package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/phonebook/internal/contact"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Failed scenarios, unsaved session changes
	ExitCommandError = 2 // Command error (bad config, unreadable file, etc.)
)

// Error codes used in JSON error responses.
const (
	ErrCodeGeneric  = "E001" // any other failure
	ErrCodeNotFound = "E002" // config or backing file does not exist
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E001", "E002", etc.
	Message string `json:"message"` // human-readable message
}

// RecordsResult is the JSON payload for list and search.
type RecordsResult struct {
	Count   int              `json:"count"`
	Records []contact.Record `json:"records"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}

// reportError writes err as a JSON error response when the formatter is in
// JSON mode and returns it unchanged. Text mode leaves reporting to main.
func reportError(f *OutputFormatter, err error) error {
	if f.Format != "json" {
		return err
	}
	code := ErrCodeGeneric
	if errors.Is(err, fs.ErrNotExist) {
		code = ErrCodeNotFound
	}
	if writeErr := f.Error(code, err.Error()); writeErr != nil {
		return errors.Join(err, writeErr)
	}
	return err
}

// Records outputs records one per line, optionally numbered from 1.
// In JSON mode the records are wrapped in a RecordsResult.
func (f *OutputFormatter) Records(records []contact.Record, numbered bool) error {
	if records == nil {
		records = []contact.Record{}
	}
	if f.Format == "json" {
		return f.Success(RecordsResult{Count: len(records), Records: records})
	}

	for i, r := range records {
		if numbered {
			fmt.Fprintf(f.Writer, "%d. %s\n", i+1, r)
			continue
		}
		fmt.Fprintln(f.Writer, r)
	}
	return nil
}
