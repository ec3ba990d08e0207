package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/phonebook/internal/testutil"
)

func TestListText(t *testing.T) {
	ivanov := testutil.Record("Ivanov", "Acme")
	petrov := testutil.Record("Petrov", "Globex")
	path := seedCSV(t, ivanov, petrov)

	cmd := NewListCommand(&RootOptions{Format: "text", File: path})
	out, _, err := execute(cmd)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ivanov.String(), lines[0])
	assert.Equal(t, petrov.String(), lines[1])
}

func TestListJSON(t *testing.T) {
	path := seedCSV(t, testutil.Record("Ivanov", "Acme"))

	cmd := NewListCommand(&RootOptions{Format: "json", File: path})
	out, _, err := execute(cmd)
	require.NoError(t, err)

	var response struct {
		Status string        `json:"status"`
		Data   RecordsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, 1, response.Data.Count)
	assert.Equal(t, "Ivanov", response.Data.Records[0].Surname)
}

func TestListMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	cmd := NewListCommand(&RootOptions{Format: "text", File: path})
	out, _, err := execute(cmd)

	require.NoError(t, err)
	assert.Empty(t, out)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "list must not create the file")
}

func TestListDoesNotModifyFile(t *testing.T) {
	path := seedCSV(t, testutil.Record("Ivanov", "Acme"))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	cmd := NewListCommand(&RootOptions{Format: "text", File: path})
	_, _, err = execute(cmd)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListSQLiteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	cmd := NewListCommand(&RootOptions{Format: "text", File: path, Backend: "sqlite"})
	out, _, err := execute(cmd)

	require.NoError(t, err)
	assert.Empty(t, out)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "list must not create the database")
}

func TestListSQLiteDoesNotModifyFile(t *testing.T) {
	ivanov := testutil.Record("Ivanov", "Acme")
	path := seedSQLite(t, ivanov)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	cmd := NewListCommand(&RootOptions{Format: "text", File: path, Backend: "sqlite"})
	out, _, err := execute(cmd)
	require.NoError(t, err)
	assert.Equal(t, ivanov.String()+"\n", out)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListJSONErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		opts     RootOptions
		wantCode string
	}{
		{
			name:     "unknown backend",
			opts:     RootOptions{Format: "json", File: filepath.Join(dir, "a"), Backend: "postgres"},
			wantCode: ErrCodeGeneric,
		},
		{
			name:     "missing config file",
			opts:     RootOptions{Format: "json", Config: filepath.Join(dir, "absent.cue")},
			wantCode: ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			out, _, err := execute(NewListCommand(&opts))
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var response CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &response))
			assert.Equal(t, "error", response.Status)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Equal(t, err.Error(), response.Error.Message)
		})
	}
}

func TestListTextErrorWritesNothing(t *testing.T) {
	cmd := NewListCommand(&RootOptions{Format: "text", Backend: "postgres", File: filepath.Join(t.TempDir(), "a")})
	out, _, err := execute(cmd)

	require.Error(t, err)
	assert.Empty(t, out)
}
