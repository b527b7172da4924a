package claims

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcsready/claim-engine/internal/config"
)

// testNow is the fixed clock used by date-sensitive rules in tests.
var testNow = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	cfg := config.Default()
	return NewEngine(cfg.Engine, cfg.Scoring, nil).WithClock(func() time.Time { return testNow })
}

// validRecord returns a claim that produces no flags under the test clock.
func validRecord() ClaimRecord {
	return ClaimRecord{
		ClaimName:       "PCS to Fort Meade",
		OrdersDate:      "2025-01-01",
		DepartureDate:   "2025-01-15",
		ArrivalDate:     "2025-01-18",
		OriginBase:      "Fort Liberty",
		DestinationBase: "Fort Meade",
		Rank:            "E-5",
		Branch:          "Army",
	}
}

func TestValidateClaim_CleanRecord(t *testing.T) {
	e := newTestEngine()
	flags := e.ValidateClaim(validRecord())
	assert.Empty(t, flags)
}

func TestValidateClaim_Totality(t *testing.T) {
	e := newTestEngine()

	records := map[string]ClaimRecord{
		"zero value": {},
		"malformed dates": {
			OrdersDate:    "not-a-date",
			DepartureDate: "2025-13-45",
			ArrivalDate:   "15 Jan 2025",
		},
		"negative numbers": {
			DependentsCount:      -3,
			TLEOriginNights:      -1,
			TLEDestinationNights: -1,
			MALTDistance:         -500,
			EstimatedWeight:      -9000,
			PerDiemDays:          -2,
		},
		"garbage strings": {
			ClaimName: "\t ",
			Rank:      "???",
			Branch:    "Starfleet",
		},
	}

	for name, rec := range records {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				flags := e.ValidateClaim(rec)
				e.CalculateConfidenceScore(flags)
				e.ValidateFieldLevel(rec)
				e.ValidateCrossField(rec)
				e.ValidateJTRCompliance(rec)
			})
		})
	}
}

func TestValidateClaim_Idempotent(t *testing.T) {
	e := newTestEngine()
	rec := validRecord()
	rec.TLEOriginNights = 15
	rec.TLEDestinationNights = 8
	rec.MALTDistance = 900
	rec.OfficialDistance = 700

	first := e.ValidateClaim(rec)
	second := e.ValidateClaim(rec)
	assert.Equal(t, first, second)
}

func TestValidateClaim_LayerOrder(t *testing.T) {
	e := newTestEngine()
	rec := validRecord()
	rec.ClaimName = ""         // field-level error
	rec.ArrivalDate = rec.DepartureDate // cross-field error
	rec.TLEOriginNights = 15
	rec.TLEDestinationNights = 8 // JTR error (23 total)

	flags := e.ValidateClaim(rec)
	require.Len(t, flags, 4) // required, per-leg TLE, date logic, total TLE

	var order []Category
	for _, f := range flags {
		order = append(order, f.Category)
	}
	assert.Equal(t, []Category{
		CategoryRequiredField,
		CategoryTLELimitExceeded,
		CategoryDateLogic,
		CategoryTLETotalExceeded,
	}, order)
}

func TestValidateClaim_EndToEndScenario(t *testing.T) {
	e := newTestEngine()
	rec := ClaimRecord{
		ClaimName:       "PCS to Travis AFB",
		OrdersDate:      "2025-01-01",
		DepartureDate:   "2025-01-15",
		ArrivalDate:     "2025-01-16",
		OriginBase:      "Eglin AFB",
		DestinationBase: "Travis AFB",
		Rank:            "E-6",
		Branch:          "Air Force",
		TLEOriginNights: 12,
	}

	flags := e.ValidateClaim(rec)
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityWarning, flags[0].Severity)
	assert.Equal(t, CategoryTLELimitExceeded, flags[0].Category)
	assert.Equal(t, FieldTLEOriginNights, flags[0].Field)

	assessment := e.CalculateConfidenceScore(flags)
	assert.Equal(t, 95, assessment.Overall)
	assert.Equal(t, LevelExcellent, assessment.Level)
}

func TestEngine_DefaultClock(t *testing.T) {
	cfg := config.Default()
	e := NewEngine(cfg.Engine, cfg.Scoring, nil)
	// Orders dated now are never stale under a real clock.
	rec := validRecord()
	rec.OrdersDate = time.Now().Format(DateLayout)
	rec.DepartureDate = time.Now().AddDate(0, 0, 10).Format(DateLayout)
	rec.ArrivalDate = time.Now().AddDate(0, 0, 12).Format(DateLayout)
	assert.Empty(t, e.ValidateClaim(rec))
}
