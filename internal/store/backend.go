package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/phonebook/internal/contact"
)

// Backend kinds accepted by Open.
const (
	KindCSV    = "csv"
	KindSQLite = "sqlite"
)

// ValidKinds lists the accepted backend kinds.
var ValidKinds = []string{KindCSV, KindSQLite}

var (
	// ErrUnknownBackend is returned by Open for an unsupported kind.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrPositionOutOfRange is returned when a position does not address a record.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrReadOnly is returned by Save on a backend opened with OpenReadOnly.
	ErrReadOnly = errors.New("backend is read-only")
)

// Backend persists a whole Directory.
type Backend interface {
	// Load returns every stored record in order. A backend with nothing
	// stored yet returns an empty slice, not an error.
	Load(ctx context.Context) ([]contact.Record, error)

	// Save replaces the stored contents with records.
	Save(ctx context.Context, records []contact.Record) error

	// Close releases any held resources.
	Close() error

	// String describes the backend for logs.
	String() string
}

// Open returns the backend of the given kind stored at path.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case KindCSV, "":
		return NewCSVFile(path), nil
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w %q: must be one of %v", ErrUnknownBackend, kind, ValidKinds)
	}
}

// OpenReadOnly returns the backend of the given kind stored at path without
// creating or changing anything on disk. A missing file loads as an empty
// Directory and Save fails with ErrReadOnly.
func OpenReadOnly(kind, path string) (Backend, error) {
	switch kind {
	case KindCSV, "":
		return readOnly{NewCSVFile(path)}, nil
	case KindSQLite:
		s, err := OpenSQLiteReadOnly(path)
		if err != nil {
			return nil, err
		}
		return readOnly{s}, nil
	default:
		return nil, fmt.Errorf("%w %q: must be one of %v", ErrUnknownBackend, kind, ValidKinds)
	}
}

type readOnly struct {
	Backend
}

func (r readOnly) Save(ctx context.Context, records []contact.Record) error {
	return fmt.Errorf("save %s: %w", r.Backend, ErrReadOnly)
}

func (r readOnly) String() string {
	return r.Backend.String() + " (read-only)"
}
