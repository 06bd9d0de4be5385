// Package export flattens an expense store into rows and encodes them for
// use outside the tracker.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/expense-tracker/pkg/expense"
)

// Row is one record together with its date. Amount is the exact stored value.
type Row struct {
	Date        string `json:"date" yaml:"date"`
	Amount      string `json:"amount" yaml:"amount"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

// Rows returns every record, dates ascending and records in insertion order
func Rows(s *expense.Store) []Row {
	rows := make([]Row, 0, s.Len())
	s.Each(func(date string, r expense.Record) {
		rows = append(rows, Row{
			Date:        date,
			Amount:      r.Amount.String(),
			Category:    r.Category,
			Description: r.Description,
		})
	})
	return rows
}

// Encoder turns rows into one export format
type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "amount", "category", "description"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Date, r.Amount, r.Category, r.Description}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	return yaml.Marshal(rows)
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

var encoders = map[string]Encoder{
	"csv":  CSVEncoder{},
	"yaml": YAMLEncoder{},
	"json": JSONEncoder{},
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the encoder registered under name
func ForFormat(name string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q (want one of %s)", name, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Write encodes the whole store with enc and writes it to w
func Write(w io.Writer, s *expense.Store, enc Encoder) error {
	b, err := enc.EncodeRows(Rows(s))
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
