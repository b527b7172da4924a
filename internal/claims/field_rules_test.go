package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldLevel_RequiredFields(t *testing.T) {
	e := newTestEngine()

	t.Run("empty record flags every required field", func(t *testing.T) {
		flags := e.ValidateFieldLevel(ClaimRecord{})
		require.Len(t, flags, 8)

		seen := map[string]bool{}
		for _, f := range flags {
			assert.Equal(t, SeverityError, f.Severity)
			assert.Equal(t, CategoryRequiredField, f.Category)
			seen[f.Field] = true
		}
		for _, field := range []string{
			FieldClaimName, FieldOrdersDate, FieldDepartureDate, FieldArrivalDate,
			FieldOriginBase, FieldDestinationBase, FieldRank, FieldBranch,
		} {
			assert.True(t, seen[field], "missing flag for %s", field)
		}
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		rec := validRecord()
		rec.ClaimName = "   "
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, FieldClaimName, flags[0].Field)
	})

	t.Run("zero numeric fields are not required", func(t *testing.T) {
		flags := e.ValidateFieldLevel(validRecord())
		assert.Empty(t, flags)
	})
}

func TestFieldLevel_StaleOrdersDate(t *testing.T) {
	e := newTestEngine()

	t.Run("orders older than six months warn", func(t *testing.T) {
		rec := validRecord()
		rec.OrdersDate = "2024-06-01" // eight months before the test clock
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, SeverityWarning, flags[0].Severity)
		assert.Equal(t, CategoryDateRange, flags[0].Category)
		assert.Equal(t, FieldOrdersDate, flags[0].Field)
	})

	t.Run("recent orders pass", func(t *testing.T) {
		rec := validRecord()
		rec.OrdersDate = "2024-12-01"
		assert.Empty(t, e.ValidateFieldLevel(rec))
	})

	t.Run("malformed date skips the check", func(t *testing.T) {
		rec := validRecord()
		rec.OrdersDate = "sometime in june"
		flags := e.ValidateFieldLevel(rec)
		// Present but unparseable: not a required-field error, staleness skipped.
		assert.Empty(t, flags)
	})
}

func TestFieldLevel_TLEPerLegCap(t *testing.T) {
	e := newTestEngine()

	t.Run("ten nights is within the cap", func(t *testing.T) {
		rec := validRecord()
		rec.TLEOriginNights = 10
		assert.Empty(t, e.ValidateFieldLevel(rec))
	})

	t.Run("eleven nights warns", func(t *testing.T) {
		rec := validRecord()
		rec.TLEOriginNights = 11
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, SeverityWarning, flags[0].Severity)
		assert.Equal(t, CategoryTLELimitExceeded, flags[0].Category)
		assert.Equal(t, FieldTLEOriginNights, flags[0].Field)
		assert.Equal(t, CitationTLE, flags[0].JTRCitation)
	})

	t.Run("both legs flagged independently", func(t *testing.T) {
		rec := validRecord()
		rec.TLEOriginNights = 12
		rec.TLEDestinationNights = 14
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 2)
		assert.Equal(t, FieldTLEOriginNights, flags[0].Field)
		assert.Equal(t, FieldTLEDestinationNights, flags[1].Field)
	})
}

func TestFieldLevel_WeightAllowance(t *testing.T) {
	e := newTestEngine()

	t.Run("at the allowance passes", func(t *testing.T) {
		rec := validRecord()
		rec.Rank = "E5"
		rec.EstimatedWeight = 7000
		assert.Empty(t, e.ValidateFieldLevel(rec))
	})

	t.Run("one pound over warns", func(t *testing.T) {
		rec := validRecord()
		rec.Rank = "E5"
		rec.EstimatedWeight = 7001
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, SeverityWarning, flags[0].Severity)
		assert.Equal(t, CategoryWeightExceeded, flags[0].Category)
		assert.Equal(t, CitationWeight, flags[0].JTRCitation)
	})

	t.Run("unknown rank uses the conservative floor", func(t *testing.T) {
		rec := validRecord()
		rec.Rank = "W-2"
		rec.EstimatedWeight = 5001
		flags := e.ValidateFieldLevel(rec)
		require.Len(t, flags, 1)
		assert.Equal(t, CategoryWeightExceeded, flags[0].Category)
	})

	t.Run("zero weight skips the check", func(t *testing.T) {
		rec := validRecord()
		rec.EstimatedWeight = 0
		assert.Empty(t, e.ValidateFieldLevel(rec))
	})
}
