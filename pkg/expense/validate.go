package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical form of every date key
const DateLayout = "2006-01-02"

// Field names reported by ValidationError
const (
	FieldAmount   = "amount"
	FieldCategory = "category"
	FieldDate     = "date"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingCategory = errors.New("missing category")
	ErrInvalidDate     = errors.New("invalid date")
)

// ValidationError describes which input was rejected and why
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Bounds on a parsed amount. Anything outside them would take unbounded
// time and memory to format or persist.
const (
	maxAmountExponent = 64
	maxAmountDigits   = 30
)

// ParseAmount parses a decimal number. Zero and negative values are accepted.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || d.Exponent() > maxAmountExponent || d.Exponent() < -maxAmountExponent || d.NumDigits() > maxAmountDigits {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Input: text, Err: ErrInvalidAmount}
	}
	return d, nil
}

// NormalizeCategory trims text and capitalizes it: first letter upper case,
// the rest lower case. Only ASCII letters are touched.
func NormalizeCategory(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Field: FieldCategory, Input: text, Err: ErrMissingCategory}
	}
	b := []byte(trimmed)
	for i, c := range b {
		switch {
		case i == 0 && 'a' <= c && c <= 'z':
			b[i] = c - 'a' + 'A'
		case i > 0 && 'A' <= c && c <= 'Z':
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b), nil
}

// NormalizeDescription trims text. An empty description is valid.
func NormalizeDescription(text string) string {
	return strings.TrimSpace(text)
}

// ParseDate checks text is a real calendar date written as YYYY-MM-DD and
// returns it in canonical form.
func ParseDate(text string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return "", &ValidationError{Field: FieldDate, Input: text, Err: ErrInvalidDate}
	}
	return t.Format(DateLayout), nil
}

// IsDate reports whether s is already a canonical date key
func IsDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// BuildRecord validates the four raw inputs and returns the date key and the
// record to file under it. Checks run amount, category, then date; the first
// failure is returned.
func BuildRecord(rawAmount, rawCategory, rawDescription, rawDate string) (string, Record, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return "", Record{}, err
	}
	category, err := NormalizeCategory(rawCategory)
	if err != nil {
		return "", Record{}, err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return "", Record{}, err
	}
	return date, Record{
		Amount:      amount,
		Category:    category,
		Description: NormalizeDescription(rawDescription),
	}, nil
}
