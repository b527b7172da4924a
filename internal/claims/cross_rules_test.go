package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossField_DateOrdering(t *testing.T) {
	e := newTestEngine()

	t.Run("arrival before departure errors", func(t *testing.T) {
		rec := validRecord()
		rec.DepartureDate = "2025-01-18"
		rec.ArrivalDate = "2025-01-15"
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, SeverityError, flags[0].Severity)
		assert.Equal(t, CategoryDateLogic, flags[0].Category)
		assert.Equal(t, FieldArrivalDate, flags[0].Field)
	})

	t.Run("same-day move errors", func(t *testing.T) {
		rec := validRecord()
		rec.ArrivalDate = rec.DepartureDate
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryDateLogic, flags[0].Category)
	})

	t.Run("missing dates are skipped", func(t *testing.T) {
		rec := validRecord()
		rec.ArrivalDate = ""
		assert.Empty(t, e.ValidateCrossField(rec))
	})
}

func TestCrossField_TravelDuration(t *testing.T) {
	e := newTestEngine()

	t.Run("long span warns", func(t *testing.T) {
		rec := validRecord()
		rec.DepartureDate = "2025-01-01"
		rec.ArrivalDate = "2025-02-15" // 45 days
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryTravelDuration, flags[0].Category)
		assert.Equal(t, SeverityWarning, flags[0].Severity)
	})

	t.Run("thirty days is acceptable", func(t *testing.T) {
		rec := validRecord()
		rec.DepartureDate = "2025-01-01"
		rec.ArrivalDate = "2025-01-31"
		assert.Empty(t, e.ValidateCrossField(rec))
	})
}

func TestCrossField_OrdersToDeparture(t *testing.T) {
	e := newTestEngine()

	t.Run("departure before orders errors", func(t *testing.T) {
		rec := validRecord()
		rec.OrdersDate = "2025-01-20"
		rec.DepartureDate = "2025-01-15"
		rec.ArrivalDate = "2025-01-18"
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, SeverityError, flags[0].Severity)
		assert.Equal(t, CategoryDateLogic, flags[0].Category)
		assert.Equal(t, FieldDepartureDate, flags[0].Field)
	})

	t.Run("gap over ninety days warns", func(t *testing.T) {
		rec := validRecord()
		rec.OrdersDate = "2024-10-01"
		rec.DepartureDate = "2025-01-15" // 106 days later
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryOrdersDepartureGap, flags[0].Category)
	})
}

func TestCrossField_PerDiemMismatch(t *testing.T) {
	e := newTestEngine()

	t.Run("within one day tolerance passes", func(t *testing.T) {
		rec := validRecord() // 3-day span
		rec.PerDiemDays = 4
		assert.Empty(t, e.ValidateCrossField(rec))
	})

	t.Run("larger divergence warns", func(t *testing.T) {
		rec := validRecord()
		rec.PerDiemDays = 8
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryPerDiemMismatch, flags[0].Category)
		assert.Equal(t, FieldPerDiemDays, flags[0].Field)
	})

	t.Run("zero claimed days skips", func(t *testing.T) {
		rec := validRecord()
		rec.PerDiemDays = 0
		assert.Empty(t, e.ValidateCrossField(rec))
	})
}

func TestCrossField_DistanceMismatch(t *testing.T) {
	e := newTestEngine()

	t.Run("within ten percent passes", func(t *testing.T) {
		rec := validRecord()
		rec.MALTDistance = 105
		rec.OfficialDistance = 100
		assert.Empty(t, e.ValidateCrossField(rec))
	})

	t.Run("large divergence warns", func(t *testing.T) {
		rec := validRecord()
		rec.MALTDistance = 500
		rec.OfficialDistance = 400
		flags := e.ValidateCrossField(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryDistanceMismatch, flags[0].Category)
		assert.Equal(t, FieldMALTDistance, flags[0].Field)
	})

	t.Run("unset distances skip", func(t *testing.T) {
		rec := validRecord()
		rec.MALTDistance = 500
		rec.OfficialDistance = 0
		assert.Empty(t, e.ValidateCrossField(rec))
	})
}
