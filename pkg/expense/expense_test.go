package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(amount, category, description string) Record {
	return Record{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: description,
	}
}

func TestStore_Append(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Append("2024-01-01", rec("10", "Food", "A")))
	require.NoError(t, s.Append("2024-01-01", rec("20", "Food", "B")))

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsEmpty())
	records := s.Records("2024-01-01")
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Description)
	assert.Equal(t, "B", records[1].Description)
}

func TestStore_AppendRejectsInvalidDate(t *testing.T) {
	s := NewStore()

	for _, d := range []string{"", "2024-1-01", "2024-13-01", " 2024-01-01"} {
		err := s.Append(d, rec("1", "Food", ""))
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", d)
	}
	assert.True(t, s.IsEmpty())
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Dates())

	require.NoError(t, s.Append("2024-01-01", rec("1", "Food", "")))
	assert.Equal(t, 1, s.Len())
}

func TestStore_DatesSorted(t *testing.T) {
	s := NewStore()
	for _, d := range []string{"2024-03-01", "2023-12-31", "2024-01-15"} {
		require.NoError(t, s.Append(d, rec("1", "Food", "")))
	}

	assert.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-03-01"}, s.Dates())
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Append("2024-01-01", rec("1", "Food", "orig")))

	records := s.Records("2024-01-01")
	records[0].Description = "changed"

	assert.Equal(t, "orig", s.Records("2024-01-01")[0].Description)
}

func TestStore_GetByCategory(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Append("2024-02-01", rec("25.50", "Food", "tx-1")))
	require.NoError(t, s.Append("2024-01-01", rec("75", "Groceries", "tx-2")))
	require.NoError(t, s.Append("2024-01-01", rec("15.25", "Food", "tx-3")))

	food := s.GetByCategory("Food")
	require.Len(t, food, 2)
	assert.Equal(t, "2024-01-01", food[0].Date)
	assert.Equal(t, "tx-3", food[0].Description)
	assert.Equal(t, "2024-02-01", food[1].Date)
	assert.Equal(t, "tx-1", food[1].Description)

	assert.Len(t, s.GetByCategory("Groceries"), 1)
	assert.Empty(t, s.GetByCategory("food"))
}
