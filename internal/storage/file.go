// Package storage persists an expense store as a single JSON file mapping
// each date to its list of records.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/example/expense-tracker/internal/logging"
	"github.com/example/expense-tracker/pkg/expense"
)

// recordJSON is the on-disk shape of one record. Amount must be a bare JSON
// number, never a quoted string.
type recordJSON struct {
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// File loads and saves a store at one path
type File struct {
	fs     afero.Fs
	path   string
	logger *log.Logger
}

// NewFile returns a File backed by fsys. A nil logger discards output.
func NewFile(fsys afero.Fs, path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &File{fs: fsys, path: path, logger: logger}
}

// Path returns the location of the expense file
func (f *File) Path() string {
	return f.path
}

// Load reads the expense file. A missing file yields an empty store.
func (f *File) Load() (*expense.Store, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("no expense file yet, starting empty", logging.FieldPath, f.path)
		return expense.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read expense file: %w", err)
	}

	s, err := f.decode(data)
	if err != nil {
		return nil, &CorruptStoreError{Path: f.path, Err: err}
	}
	f.logger.Debug("loaded expenses", logging.FieldPath, f.path, logging.FieldDates, len(s.Dates()), logging.FieldRecords, s.Len())
	return s, nil
}

func (f *File) decode(data []byte) (*expense.Store, error) {
	var raw map[string][]recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	s := expense.NewStore()
	for date, records := range raw {
		if !expense.IsDate(date) {
			return nil, fmt.Errorf("date key %q is not YYYY-MM-DD", date)
		}
		if len(records) == 0 {
			f.logger.Warn("dropping date with no records", logging.FieldPath, f.path, logging.FieldDate, date)
			continue
		}
		for i, r := range records {
			amount, err := decodeAmount(r.Amount)
			if err != nil {
				return nil, fmt.Errorf("record %d on %s: %w", i, date, err)
			}
			if strings.TrimSpace(r.Category) == "" {
				return nil, fmt.Errorf("record %d on %s: %w", i, date, expense.ErrMissingCategory)
			}
			rec := expense.Record{Amount: amount, Category: r.Category, Description: r.Description}
			if err := s.Append(date, rec); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text[0] == '"' {
		return decimal.Zero, fmt.Errorf("amount %s is not a JSON number: %w", text, expense.ErrInvalidAmount)
	}
	return expense.ParseAmount(text)
}

// Save writes the whole store to a temporary file next to the destination and
// renames it into place.
func (f *File) Save(s *expense.Store) error {
	data, err := encode(s)
	if err != nil {
		return &PersistError{Path: f.path, Op: "encode", Err: err}
	}

	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return &PersistError{Path: f.path, Op: "create directory for", Err: err}
	}

	tmp, err := afero.TempFile(f.fs, dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return &PersistError{Path: f.path, Op: "create temp", Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = f.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &PersistError{Path: f.path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &PersistError{Path: f.path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistError{Path: f.path, Op: "close", Err: err}
	}
	if err := f.fs.Chmod(tmpName, f.mode()); err != nil {
		return &PersistError{Path: f.path, Op: "chmod", Err: err}
	}
	if err := f.fs.Rename(tmpName, f.path); err != nil {
		return &PersistError{Path: f.path, Op: "replace", Err: err}
	}
	committed = true

	f.logger.Debug("saved expenses", logging.FieldPath, f.path, logging.FieldRecords, s.Len())
	return nil
}

// mode keeps the permissions of an existing ledger and defaults to 0644
func (f *File) mode() fs.FileMode {
	if info, err := f.fs.Stat(f.path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// AppendAndPersist files r under date and saves the store. If the save fails
// the record stays in memory and only Save needs retrying.
func (f *File) AppendAndPersist(s *expense.Store, date string, r expense.Record) error {
	if err := s.Append(date, r); err != nil {
		return err
	}
	return f.Save(s)
}

func encode(s *expense.Store) ([]byte, error) {
	out := make(map[string][]recordJSON, len(s.Dates()))
	for _, date := range s.Dates() {
		records := s.Records(date)
		rows := make([]recordJSON, 0, len(records))
		for _, r := range records {
			rows = append(rows, recordJSON{
				Amount:      json.RawMessage(r.Amount.String()),
				Category:    r.Category,
				Description: r.Description,
			})
		}
		out[date] = rows
	}
	b, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
