package phonebook

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/phonebook/internal/console"
	"github.com/roach88/phonebook/internal/testutil"
)

func TestRun_ExitSavesAndReturns(t *testing.T) {
	tb := newTestBook(t, testutil.Lines("6", "1"))

	require.NoError(t, tb.book.Run(context.Background()))

	out := tb.out.String()
	assert.Equal(t, 1, strings.Count(out, PromptChoice), "input after exit must not be read")
	assert.True(t, strings.HasSuffix(out, MsgFarewell+"\n"))
	assert.NotEmpty(t, tb.fileBytes(t))
}

func TestRun_InvalidChoiceLoops(t *testing.T) {
	tb := newTestBook(t, testutil.Lines("7", " 1", "menu", "6"))

	require.NoError(t, tb.book.Run(context.Background()))

	assert.Equal(t, 3, strings.Count(tb.out.String(), MsgInvalidChoice))
	assert.Equal(t, 4, strings.Count(tb.out.String(), PromptChoice))
}

func TestRun_DispatchesEveryOperation(t *testing.T) {
	input := testutil.Lines("1") +
		testutil.Lines("2") + testutil.AddInput(testutil.Record("Петров", "Acme")) +
		testutil.Lines("4", "acme") +
		testutil.Lines("3", "Петров", "1", "", "", "", "Other", "", "") +
		testutil.Lines("5", "Иванов", "1") +
		testutil.Lines("1", "6")
	tb := newTestBook(t, input, testutil.Record("Иванов", "Acme"))

	require.NoError(t, tb.book.Run(context.Background()))

	out := tb.out.String()
	assert.Contains(t, out, MsgAdded)
	assert.Contains(t, out, MsgSearchResults)
	assert.Contains(t, out, MsgEdited)
	assert.Contains(t, out, MsgDeleted)
	assert.Contains(t, out, MsgFarewell)

	records := tb.reload(t)
	require.Len(t, records, 1)
	assert.Equal(t, "Петров", records[0].Surname)
	assert.Equal(t, "Other", records[0].Organization)
}

func TestRun_EOFAtMenuBehavesLikeExit(t *testing.T) {
	tb := newTestBook(t, testutil.Lines("1"), testutil.Record("Иванов", "Acme"))

	require.NoError(t, tb.book.Run(context.Background()))

	assert.Contains(t, tb.out.String(), MsgFarewell)
	assert.Len(t, tb.reload(t), 1)
}

func TestRun_EOFInsideOperationBehavesLikeExit(t *testing.T) {
	tb := newTestBook(t, testutil.Lines("2", "Smith", "John"))

	require.NoError(t, tb.book.Run(context.Background()))

	assert.Contains(t, tb.out.String(), MsgFarewell)
	assert.Empty(t, tb.reload(t), "a half-entered record is not added")
}

func TestRun_CancelledContextSaves(t *testing.T) {
	tb := newTestBook(t, testutil.Lines("1", "6"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, tb.book.Run(ctx))

	assert.NotContains(t, tb.out.String(), PromptChoice)
	assert.Contains(t, tb.out.String(), MsgFarewell)
	assert.NotEmpty(t, tb.fileBytes(t))
}

func TestRun_LogsSessionID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tb := newTestBook(t, "")
	book := New(tb.store, console.New(strings.NewReader(testutil.Lines("6")), &strings.Builder{}),
		WithLogger(logger),
		WithSessionIDs(testutil.NewFixedSessionGenerator("session-42")))

	require.NoError(t, book.Run(context.Background()))

	assert.Contains(t, logs.String(), "session started")
	assert.Contains(t, logs.String(), "session=session-42")
	assert.Contains(t, logs.String(), "session ended")
}

func TestRun_SecondRunGetsOneSessionID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tb := newTestBook(t, "")
	book := New(tb.store, console.New(strings.NewReader(testutil.Lines("6", "6")), &strings.Builder{}),
		WithLogger(logger),
		WithSessionIDs(testutil.NewFixedSessionGenerator("session-42")))

	require.NoError(t, book.Run(context.Background()))
	require.NoError(t, book.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "session="), line)
	}
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
