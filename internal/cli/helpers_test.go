package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/phonebook/internal/contact"
	"github.com/roach88/phonebook/internal/store"
)

// seedCSV writes records to a fresh CSV file and returns its path.
func seedCSV(t *testing.T, records ...contact.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phone_book.csv")
	require.NoError(t, store.NewCSVFile(path).Save(context.Background(), records))
	return path
}

// seedSQLite writes records to a fresh SQLite database and returns its path.
func seedSQLite(t *testing.T, records ...contact.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phone_book.db")
	db, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Save(context.Background(), records))
	require.NoError(t, db.Close())
	return path
}

// loadCSV reads the records stored at path.
func loadCSV(t *testing.T, path string) []contact.Record {
	t.Helper()
	records, err := store.NewCSVFile(path).Load(context.Background())
	require.NoError(t, err)
	return records
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
