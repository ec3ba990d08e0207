package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/phonebook/internal/console"
	"github.com/roach88/phonebook/internal/phonebook"
	"github.com/roach88/phonebook/internal/store"
	"github.com/roach88/phonebook/internal/testutil"
)

// Harness is the scenario execution engine.
type Harness struct {
	dir    string
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh backing file in its own temporary
// directory. The returned error covers setup failures only; a session that
// fails or an assertion that does not hold is reported in the Result.
//
// Execution flow:
// 1. Create a temporary directory and backend
// 2. Seed the Directory with scenario.Records
// 3. Run the interactive session on scenario.Input
// 4. Reload the persisted Directory
// 5. Evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "phonebook-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario dir: %w", err)
	}
	defer os.RemoveAll(dir)

	h := &Harness{
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	return h.run(context.Background(), scenario)
}

func (h *Harness) run(ctx context.Context, scenario *Scenario) (*Result, error) {
	backend, err := h.openBackend(scenario.Backend)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	if len(scenario.Records) > 0 {
		if err := backend.Save(ctx, scenario.Records); err != nil {
			return nil, fmt.Errorf("failed to seed records: %w", err)
		}
	}

	st, err := store.New(ctx, backend, h.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	result := NewResult()

	var transcript strings.Builder
	input := strings.NewReader(strings.Join(scenario.Input, "\n") + "\n")
	book := phonebook.New(st, console.New(input, &transcript),
		phonebook.WithLogger(h.logger),
		phonebook.WithSessionIDs(testutil.NewFixedSessionGenerator(scenario.Name)),
	)
	if err := book.Run(ctx); err != nil {
		result.AddError(fmt.Sprintf("session failed: %v", err))
	}
	result.Transcript = transcript.String()

	records, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload records: %w", err)
	}
	result.Records = records

	for _, assertion := range scenario.Assertions {
		if err := evaluateAssertion(result, assertion); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}

func (h *Harness) openBackend(kind string) (store.Backend, error) {
	name := "phone_book.csv"
	if kind == store.KindSQLite {
		name = "phone_book.db"
	}
	backend, err := store.Open(kind, filepath.Join(h.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open backend: %w", err)
	}
	return backend, nil
}
