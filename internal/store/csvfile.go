package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/roach88/phonebook/internal/contact"
)

// DefaultCSVPath is the backing file used when none is configured.
const DefaultCSVPath = "phone_book.csv"

// CSVFile persists the Directory as a comma-separated file with a header row.
type CSVFile struct {
	path string
}

// NewCSVFile returns a CSV backend for path. The file is not touched until
// Load or Save.
func NewCSVFile(path string) *CSVFile {
	if path == "" {
		path = DefaultCSVPath
	}
	return &CSVFile{path: path}
}

// Path returns the backing file path.
func (f *CSVFile) Path() string {
	return f.path
}

func (f *CSVFile) String() string {
	return "csv:" + f.path
}

// Load reads every row after the header. A missing file yields an empty
// Directory. Columns are taken by position; the header content is not checked.
func (f *CSVFile) Load(ctx context.Context) ([]contact.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []contact.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	return readCSV(file)
}

// Save truncates the file and writes the header followed by every record.
// The write is not atomic.
func (f *CSVFile) Save(ctx context.Context, records []contact.Record) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", f.path, closeErr)
		}
	}()

	if err := writeCSV(file, records); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; the file is opened and closed within each call.
func (f *CSVFile) Close() error {
	return nil
}

func readCSV(r io.Reader) ([]contact.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records := []contact.Record{}
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		records = append(records, contact.FromValues(row))
	}
	return records, nil
}

func writeCSV(w io.Writer, records []contact.Record) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(contact.Header()); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(r.Values()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
