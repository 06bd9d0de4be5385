package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"7.25", "7.25"},
		{" 3 ", "3"},
		{"0", "0"},
		{"-4.10", "-4.1"},
		{"1e3", "1000"},
		{"0.1", "0.1"},
		{"1e64", "1e64"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "input %q: got %s", tc.in, got)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{
		"abc", "", "   ", "12,50", "1.2.3", "$5", "NaN",
		"1e400000000", "1e-400000000", "1e65", "1234567890123456789012345678901",
	} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, FieldAmount, verr.Field)
		assert.Equal(t, in, verr.Input)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"food":          "Food",
		"FOOD":          "Food",
		"  fOoD  ":      "Food",
		"eating out":    "Eating out",
		"x":             "X",
		"1st":           "1st",
		"café":          "Café",
		"\tTransport\n": "Transport",
	}
	for in, want := range cases {
		got, err := NormalizeCategory(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizeCategory_Missing(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeCategory(in)
		assert.ErrorIs(t, err, ErrMissingCategory, "input %q", in)
	}
}

func TestNormalizeCategory_Idempotent(t *testing.T) {
	for _, in := range []string{"food", "GROCERIES", "mIxEd CaSe", "über", "çA", " a b c ", "Éclair", "1abc"} {
		once, err := NormalizeCategory(in)
		require.NoError(t, err)
		twice, err := NormalizeCategory(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "", NormalizeDescription("   "))
	assert.Equal(t, "lunch with Sam", NormalizeDescription("  lunch with Sam "))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	got, err = ParseDate(" 2024-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{
		"2024-02-30",
		"2023-02-29",
		"2024-2-5",
		"2024-13-01",
		"2024-01-32",
		"01-02-2024",
		"2024/01/02",
		"2024-01-02T00:00:00Z",
		"",
	} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-01-01"))
	assert.False(t, IsDate("2024-1-1"))
	assert.False(t, IsDate("2024-01-01 "))
}

func TestBuildRecord(t *testing.T) {
	date, r, err := BuildRecord(" 12.50", "food ", "  ", "2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", date)
	assert.True(t, r.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "Food", r.Category)
	assert.Equal(t, "", r.Description)
}

func TestBuildRecord_FirstFailureWins(t *testing.T) {
	cases := []struct {
		name                   string
		amount, category, date string
		want                   error
	}{
		{"all bad", "abc", "", "bad", ErrInvalidAmount},
		{"category and date bad", "1", " ", "bad", ErrMissingCategory},
		{"date bad", "1", "food", "2024-02-30", ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := BuildRecord(tc.amount, tc.category, "desc", tc.date)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
