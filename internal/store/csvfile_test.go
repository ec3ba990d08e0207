package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/phonebook/internal/contact"
)

func TestCSVFile_MissingFileIsEmpty(t *testing.T) {
	f := NewCSVFile(filepath.Join(t.TempDir(), "absent.csv"))

	records, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCSVFile_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultCSVPath, NewCSVFile("").Path())
}

func TestCSVFile_SaveWritesHeaderAndCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	f := NewCSVFile(path)

	err := f.Save(context.Background(), []contact.Record{testRecord("Иванов", "Ромашка")})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Фамилия,Имя,Отчество,Организация,Рабочий телефон,Личный телефон\r\n"+
			"Иванов,Иван,Иванович,Ромашка,(495) 123-45-67,(916) 765-43-21\r\n",
		string(data))
}

func TestCSVFile_EmptyDirectoryWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	f := NewCSVFile(path)

	require.NoError(t, f.Save(context.Background(), nil))

	records, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	f := NewCSVFile(path)

	want := []contact.Record{
		testRecord("Иванов", "Ромашка"),
		testRecord("Петров", "Рога, Копыта И Ко"),
		testRecord("Сидоров", `Компания "Кавычки"`),
		testRecord("Иванов", "Ромашка"),
	}
	require.NoError(t, f.Save(context.Background(), want))

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCSVFile_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	f := NewCSVFile(path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []contact.Record{testRecord("Иванов", "A"), testRecord("Петров", "B")}))
	require.NoError(t, f.Save(ctx, []contact.Record{testRecord("Сидоров", "C")}))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Сидоров", got[0].Surname)
}

func TestCSVFile_ColumnsArePositional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	content := "Surname,Name\r\n" +
		"Иванов,Иван\r\n" +
		"a,b,c,d,e,f,g\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewCSVFile(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, contact.Record{Surname: "Иванов", FirstName: "Иван"}, got[0])
	assert.Equal(t, "f", got[1].PersonalPhone)
}

func TestCSVFile_ReadsLFFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	content := "Фамилия,Имя,Отчество,Организация,Рабочий телефон,Личный телефон\n" +
		"Петров,Пётр,Петрович,Acme,(495) 123-45-67,(916) 765-43-21\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewCSVFile(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "(916) 765-43-21", got[0].PersonalPhone)
}

func TestCSVFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewCSVFile(filepath.Join(t.TempDir(), "book.csv"))
	assert.ErrorIs(t, f.Save(ctx, nil), context.Canceled)
	_, err := f.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
