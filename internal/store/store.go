package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/phonebook/internal/contact"
)

// Store owns the in-memory Directory and the Backend it is persisted to.
// Store is not safe for concurrent use.
type Store struct {
	backend Backend
	records []contact.Record
	logger  *slog.Logger
}

// New loads the Directory from backend.
// A nil logger discards log output.
func New(ctx context.Context, backend Backend, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	records, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	if records == nil {
		records = []contact.Record{}
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			logger.Debug("stored record fails entry validation", "position", i, "error", err)
		}
	}
	logger.Debug("directory loaded", "backend", backend.String(), "records", len(records))
	return &Store{backend: backend, records: records, logger: logger}, nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Backend returns the persistence backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the Directory in order.
func (s *Store) Records() []contact.Record {
	out := make([]contact.Record, len(s.records))
	copy(out, s.records)
	return out
}

// At returns the record at position i.
func (s *Store) At(i int) (contact.Record, error) {
	if err := s.checkPosition(i); err != nil {
		return contact.Record{}, err
	}
	return s.records[i], nil
}

// Append adds r at the end of the Directory. Duplicates are allowed.
func (s *Store) Append(r contact.Record) {
	s.records = append(s.records, r)
	s.logger.Debug("record appended", "position", len(s.records)-1)
}

// Replace overwrites the record at position i.
func (s *Store) Replace(i int, r contact.Record) error {
	if err := s.checkPosition(i); err != nil {
		return err
	}
	s.records[i] = r
	s.logger.Debug("record replaced", "position", i)
	return nil
}

// Remove deletes the record at position i. Records with identical content at
// other positions are left alone.
func (s *Store) Remove(i int) error {
	if err := s.checkPosition(i); err != nil {
		return err
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.logger.Debug("record removed", "position", i)
	return nil
}

// MatchSurname returns the positions of records whose Surname equals surname
// exactly, in Directory order.
func (s *Store) MatchSurname(surname string) []int {
	var positions []int
	for i, r := range s.records {
		if r.Surname == surname {
			positions = append(positions, i)
		}
	}
	return positions
}

// Search returns the records that match every keyword, in Directory order.
// See contact.Record.Matches.
func (s *Store) Search(keywords []string) []contact.Record {
	var out []contact.Record
	for _, r := range s.records {
		if r.Matches(keywords) {
			out = append(out, r)
		}
	}
	return out
}

// Save writes the entire Directory to the backend.
func (s *Store) Save(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.records); err != nil {
		s.logger.Error("save failed", "backend", s.backend.String(), "error", err)
		return fmt.Errorf("save directory: %w", err)
	}
	s.logger.Debug("directory saved", "backend", s.backend.String(), "records", len(s.records))
	return nil
}

func (s *Store) checkPosition(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d (directory has %d records)", ErrPositionOutOfRange, i, len(s.records))
	}
	return nil
}
