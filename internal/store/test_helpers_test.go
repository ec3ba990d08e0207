package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/phonebook/internal/contact"
)

// createTestSQLite creates a new SQLite backend in a temp dir.
func createTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

// createTestStore creates a Store over a CSV file seeded with records.
func createTestStore(t *testing.T, records ...contact.Record) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phone_book.csv")
	backend := NewCSVFile(path)
	if len(records) > 0 {
		if err := backend.Save(context.Background(), records); err != nil {
			t.Fatalf("seed Save() failed: %v", err)
		}
	}
	s, err := New(context.Background(), backend, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s, path
}

func testRecord(surname, org string) contact.Record {
	return contact.Record{
		Surname:       surname,
		FirstName:     "Иван",
		Patronymic:    "Иванович",
		Organization:  org,
		WorkPhone:     "(495) 123-45-67",
		PersonalPhone: "(916) 765-43-21",
	}
}
