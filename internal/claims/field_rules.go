package claims

import (
	"fmt"
	"time"
)

// fieldLevelRules are the cheap per-field checks. Every rule is evaluated
// on every call; a partially filled record is expected input.
var fieldLevelRules = []rule{
	{name: "required_fields", check: (*Engine).checkRequiredFields},
	{name: "stale_orders_date", check: (*Engine).checkStaleOrdersDate},
	{name: "tle_per_leg_limit", check: (*Engine).checkTLEPerLeg},
	{name: "weight_allowance", check: (*Engine).checkWeightAllowance},
}

// requiredFields lists the string fields that must be present before a
// claim is submittable. Numeric fields are deliberately absent: zero is a
// legitimate value for dependents, nights and weights.
var requiredFields = []struct {
	field string
	label string
}{
	{FieldClaimName, "Claim name"},
	{FieldOrdersDate, "Orders date"},
	{FieldDepartureDate, "Departure date"},
	{FieldArrivalDate, "Arrival date"},
	{FieldOriginBase, "Origin base"},
	{FieldDestinationBase, "Destination base"},
	{FieldRank, "Rank"},
	{FieldBranch, "Branch"},
}

func (e *Engine) checkRequiredFields(rec ClaimRecord, _ time.Time) []ValidationFlag {
	values := map[string]string{
		FieldClaimName:       rec.ClaimName,
		FieldOrdersDate:      rec.OrdersDate,
		FieldDepartureDate:   rec.DepartureDate,
		FieldArrivalDate:     rec.ArrivalDate,
		FieldOriginBase:      rec.OriginBase,
		FieldDestinationBase: rec.DestinationBase,
		FieldRank:            rec.Rank,
		FieldBranch:          rec.Branch,
	}

	var flags []ValidationFlag
	for _, rf := range requiredFields {
		if isBlank(values[rf.field]) {
			flags = append(flags, ValidationFlag{
				Field:    rf.field,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s is required", rf.label),
				Category: CategoryRequiredField,
			})
		}
	}
	return flags
}

func (e *Engine) checkStaleOrdersDate(rec ClaimRecord, now time.Time) []ValidationFlag {
	orders, ok := parseDate(rec.OrdersDate)
	if !ok {
		return nil
	}
	cutoff := now.AddDate(0, -e.cfg.StaleOrdersMonths, 0)
	if orders.Before(cutoff) {
		return []ValidationFlag{{
			Field:        FieldOrdersDate,
			Severity:     SeverityWarning,
			Message:      fmt.Sprintf("Orders date is more than %d months old", e.cfg.StaleOrdersMonths),
			SuggestedFix: "Verify the orders date is correct",
			Category:     CategoryDateRange,
		}}
	}
	return nil
}

func (e *Engine) checkTLEPerLeg(rec ClaimRecord, _ time.Time) []ValidationFlag {
	var flags []ValidationFlag
	legs := []struct {
		field  string
		nights int
		label  string
	}{
		{FieldTLEOriginNights, rec.TLEOriginNights, "origin"},
		{FieldTLEDestinationNights, rec.TLEDestinationNights, "destination"},
	}
	for _, leg := range legs {
		if leg.nights > e.cfg.TLENightsPerLegLimit {
			flags = append(flags, ValidationFlag{
				Field:    leg.field,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("TLE nights at %s exceed the %d-night limit per location",
					leg.label, e.cfg.TLENightsPerLegLimit),
				SuggestedFix: fmt.Sprintf("Reduce claimed nights to %d or fewer", e.cfg.TLENightsPerLegLimit),
				JTRCitation:  CitationTLE,
				Category:     CategoryTLELimitExceeded,
			})
		}
	}
	return flags
}

func (e *Engine) checkWeightAllowance(rec ClaimRecord, _ time.Time) []ValidationFlag {
	if rec.EstimatedWeight <= 0 {
		return nil
	}
	allowance := WeightAllowance(Rank(rec.Rank), e.cfg.DefaultWeightAllowance)
	if rec.EstimatedWeight > float64(allowance) {
		grade := rec.Rank
		if isBlank(grade) || !Rank(grade).IsCanonical() {
			grade = "this pay grade"
		}
		return []ValidationFlag{{
			Field:    FieldEstimatedWeight,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Estimated weight %.0f lbs exceeds the %d lbs allowance for %s",
				rec.EstimatedWeight, allowance, grade),
			SuggestedFix: "Verify the estimate or check eligibility for an additional weight allowance",
			JTRCitation:  CitationWeight,
			Category:     CategoryWeightExceeded,
		}}
	}
	return nil
}
