// Package report builds the read-only views over an expense store: the
// chronological listing and per-category totals, plus their text rendering.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/expense-tracker/pkg/expense"
)

const (
	EmptyListingMessage = "No expenses recorded yet."
	EmptySummaryMessage = "No expenses to summarize."
	SummaryHeading      = "Expense Summary by Category:"
	NoDescription       = "No description"
)

// Day is one date of the listing with its records in insertion order
type Day struct {
	Date    string
	Records []expense.Record
}

// Listing is the store in date order
type Listing struct {
	Days []Day
}

// Empty reports whether there is nothing to list
func (l Listing) Empty() bool {
	return len(l.Days) == 0
}

// CategoryTotal is the summed amount of one category
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary holds category totals ordered by first appearance
type Summary struct {
	Totals []CategoryTotal
}

// Empty reports whether there is nothing to summarize
func (s Summary) Empty() bool {
	return len(s.Totals) == 0
}

// Total returns the total for category and whether it is present
func (s Summary) Total(category string) (decimal.Decimal, bool) {
	for _, t := range s.Totals {
		if t.Category == category {
			return t.Total, true
		}
	}
	return decimal.Zero, false
}

// ListChronological returns every date ascending with its records
func ListChronological(s *expense.Store) Listing {
	var l Listing
	for _, d := range s.Dates() {
		l.Days = append(l.Days, Day{Date: d, Records: s.Records(d)})
	}
	return l
}

// ListCategory is ListChronological restricted to one category. Dates with no
// matching record are left out.
func ListCategory(s *expense.Store, category string) Listing {
	var l Listing
	for _, e := range s.GetByCategory(category) {
		if n := len(l.Days); n == 0 || l.Days[n-1].Date != e.Date {
			l.Days = append(l.Days, Day{Date: e.Date})
		}
		last := &l.Days[len(l.Days)-1]
		last.Records = append(last.Records, e.Record)
	}
	return l
}

// SummarizeByCategory sums amounts per category. Categories appear in the
// order they are first met walking dates ascending, records in order.
func SummarizeByCategory(s *expense.Store) Summary {
	var sum Summary
	index := make(map[string]int)
	s.Each(func(_ string, r expense.Record) {
		i, ok := index[r.Category]
		if !ok {
			i = len(sum.Totals)
			index[r.Category] = i
			sum.Totals = append(sum.Totals, CategoryTotal{Category: r.Category, Total: decimal.Zero})
		}
		sum.Totals[i].Total = sum.Totals[i].Total.Add(r.Amount)
	})
	return sum
}

// Theme decorates heading lines. The zero Theme leaves them untouched.
type Theme struct {
	Heading func(string) string
}

func (t Theme) heading(s string) string {
	if t.Heading == nil {
		return s
	}
	return t.Heading(s)
}

// FormatAmount renders an amount the way every view shows it
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RenderChronological renders the listing as display lines
func RenderChronological(s *expense.Store) []string {
	return Theme{}.RenderChronological(s)
}

// RenderCategorySummary renders the category totals as display lines
func RenderCategorySummary(s *expense.Store) []string {
	return Theme{}.RenderCategorySummary(s)
}

// RenderChronological renders the listing with styled date headings
func (t Theme) RenderChronological(s *expense.Store) []string {
	return t.RenderListing(ListChronological(s))
}

// RenderListing renders an already built listing
func (t Theme) RenderListing(l Listing) []string {
	if l.Empty() {
		return []string{EmptyListingMessage}
	}
	var lines []string
	for _, day := range l.Days {
		lines = append(lines, t.heading("Date: "+day.Date))
		for _, r := range day.Records {
			lines = append(lines, recordLine(r))
		}
		lines = append(lines, "")
	}
	return lines
}

// RenderCategorySummary renders the totals with a styled heading
func (t Theme) RenderCategorySummary(s *expense.Store) []string {
	sum := SummarizeByCategory(s)
	if sum.Empty() {
		return []string{EmptySummaryMessage}
	}
	lines := []string{t.heading(SummaryHeading)}
	for _, ct := range sum.Totals {
		lines = append(lines, fmt.Sprintf("%s: %s", ct.Category, FormatAmount(ct.Total)))
	}
	return lines
}

func recordLine(r expense.Record) string {
	desc := r.Description
	if desc == "" {
		desc = NoDescription
	}
	return fmt.Sprintf("  %s - %s - %s", FormatAmount(r.Amount), r.Category, desc)
}
