package claims

import (
	"fmt"
	"math"
	"time"
)

// crossFieldRules detect inconsistencies between already-populated fields.
// A rule whose inputs are unset is skipped; reporting missing data is the
// field-level layer's job.
var crossFieldRules = []rule{
	{name: "departure_before_arrival", check: (*Engine).checkDepartureArrivalOrder},
	{name: "travel_duration", check: (*Engine).checkTravelDuration},
	{name: "orders_before_departure", check: (*Engine).checkOrdersDepartureOrder},
	{name: "orders_to_departure_gap", check: (*Engine).checkOrdersDepartureGap},
	{name: "per_diem_days_match", check: (*Engine).checkPerDiemDays},
	{name: "malt_distance_match", check: (*Engine).checkMALTDistance},
}

// travelDays returns the whole-day span between departure and arrival.
func travelDays(departure, arrival time.Time) int {
	return int(arrival.Sub(departure).Hours() / 24)
}

func (e *Engine) checkDepartureArrivalOrder(rec ClaimRecord, _ time.Time) []ValidationFlag {
	departure, ok := parseDate(rec.DepartureDate)
	if !ok {
		return nil
	}
	arrival, ok := parseDate(rec.ArrivalDate)
	if !ok {
		return nil
	}
	if !departure.Before(arrival) {
		return []ValidationFlag{{
			Field:        FieldArrivalDate,
			Severity:     SeverityError,
			Message:      "Arrival date must be after departure date",
			SuggestedFix: "Check that departure and arrival dates are entered in the right fields",
			Category:     CategoryDateLogic,
		}}
	}
	return nil
}

func (e *Engine) checkTravelDuration(rec ClaimRecord, _ time.Time) []ValidationFlag {
	departure, ok := parseDate(rec.DepartureDate)
	if !ok {
		return nil
	}
	arrival, ok := parseDate(rec.ArrivalDate)
	if !ok || !departure.Before(arrival) {
		return nil
	}
	days := travelDays(departure, arrival)
	if days > e.cfg.MaxTravelDays {
		return []ValidationFlag{{
			Field:        FieldArrivalDate,
			Severity:     SeverityWarning,
			Message:      fmt.Sprintf("Travel duration of %d days is unusually long", days),
			SuggestedFix: "Confirm any authorized stopovers are documented",
			Category:     CategoryTravelDuration,
		}}
	}
	return nil
}

func (e *Engine) checkOrdersDepartureOrder(rec ClaimRecord, _ time.Time) []ValidationFlag {
	orders, ok := parseDate(rec.OrdersDate)
	if !ok {
		return nil
	}
	departure, ok := parseDate(rec.DepartureDate)
	if !ok {
		return nil
	}
	if departure.Before(orders) {
		return []ValidationFlag{{
			Field:        FieldDepartureDate,
			Severity:     SeverityError,
			Message:      "Departure date is before the orders were issued",
			SuggestedFix: "Departure cannot precede the orders date",
			Category:     CategoryDateLogic,
		}}
	}
	return nil
}

func (e *Engine) checkOrdersDepartureGap(rec ClaimRecord, _ time.Time) []ValidationFlag {
	orders, ok := parseDate(rec.OrdersDate)
	if !ok {
		return nil
	}
	departure, ok := parseDate(rec.DepartureDate)
	if !ok || departure.Before(orders) {
		return nil
	}
	gap := travelDays(orders, departure)
	if gap > e.cfg.MaxOrdersToDepartDays {
		return []ValidationFlag{{
			Field:        FieldDepartureDate,
			Severity:     SeverityWarning,
			Message:      fmt.Sprintf("%d days between orders and departure is an unusually long lead time", gap),
			SuggestedFix: "Confirm the orders and departure dates",
			Category:     CategoryOrdersDepartureGap,
		}}
	}
	return nil
}

func (e *Engine) checkPerDiemDays(rec ClaimRecord, _ time.Time) []ValidationFlag {
	if rec.PerDiemDays <= 0 {
		return nil
	}
	departure, ok := parseDate(rec.DepartureDate)
	if !ok {
		return nil
	}
	arrival, ok := parseDate(rec.ArrivalDate)
	if !ok || !departure.Before(arrival) {
		return nil
	}
	span := travelDays(departure, arrival)
	diff := rec.PerDiemDays - span
	if diff < 0 {
		diff = -diff
	}
	if diff > e.cfg.PerDiemToleranceDays {
		return []ValidationFlag{{
			Field:    FieldPerDiemDays,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Claimed per diem days (%d) do not match the %d-day travel window",
				rec.PerDiemDays, span),
			SuggestedFix: "Per diem days should track the actual travel dates",
			Category:     CategoryPerDiemMismatch,
		}}
	}
	return nil
}

func (e *Engine) checkMALTDistance(rec ClaimRecord, _ time.Time) []ValidationFlag {
	if rec.MALTDistance <= 0 || rec.OfficialDistance <= 0 {
		return nil
	}
	diffPct := math.Abs(rec.MALTDistance-rec.OfficialDistance) / rec.OfficialDistance * 100
	if diffPct > e.cfg.DistanceTolerancePct {
		return []ValidationFlag{{
			Field:    FieldMALTDistance,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("MALT distance differs from the official distance by %.1f%%",
				diffPct),
			SuggestedFix: "Check the claimed mileage against the official distance",
			Category:     CategoryDistanceMismatch,
		}}
	}
	return nil
}
