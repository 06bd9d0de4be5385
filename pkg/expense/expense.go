package expense

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Record represents a single expense entry
type Record struct {
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Entry is a record together with the date it was filed under
type Entry struct {
	Date string
	Record
}

// Store holds every record keyed by ISO date. The zero value is an empty store.
type Store struct {
	days map[string][]Record
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{days: make(map[string][]Record)}
}

// Append adds a record to the end of the sequence for date
func (s *Store) Append(date string, r Record) error {
	if !IsDate(date) {
		return &ValidationError{Field: FieldDate, Input: date, Err: ErrInvalidDate}
	}
	if s.days == nil {
		s.days = make(map[string][]Record)
	}
	s.days[date] = append(s.days[date], r)
	return nil
}

// Dates returns every date key in ascending order
func (s *Store) Dates() []string {
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	// zero-padded ISO dates sort chronologically
	sort.Strings(dates)
	return dates
}

// Records returns a copy of the records filed under date, in insertion order
func (s *Store) Records(date string) []Record {
	return append([]Record(nil), s.days[date]...)
}

// Len returns the total number of records
func (s *Store) Len() int {
	n := 0
	for _, rs := range s.days {
		n += len(rs)
	}
	return n
}

// IsEmpty reports whether the store holds no dates
func (s *Store) IsEmpty() bool {
	return len(s.days) == 0
}

// Each calls fn for every record, dates ascending and records in insertion order
func (s *Store) Each(fn func(date string, r Record)) {
	for _, d := range s.Dates() {
		for _, r := range s.days[d] {
			fn(d, r)
		}
	}
}

// GetByCategory returns all records matching the given category
func (s *Store) GetByCategory(category string) []Entry {
	var filtered []Entry
	s.Each(func(date string, r Record) {
		if r.Category == category {
			filtered = append(filtered, Entry{Date: date, Record: r})
		}
	})
	return filtered
}
