package claims

// Severity classifies how strongly a finding should gate submission.
// Ordering matters for scoring: error > warning > info.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category is a stable machine-readable tag identifying the kind of finding,
// used for grouping, analytics and metrics labels. The taxonomy is open:
// new regulation-derived categories may be added without code changes
// elsewhere.
type Category string

const (
	CategoryRequiredField      Category = "required_field"
	CategoryDateRange          Category = "date_range"
	CategoryTLELimitExceeded   Category = "tle_limit_exceeded"
	CategoryWeightExceeded     Category = "weight_exceeded"
	CategoryDateLogic          Category = "date_logic"
	CategoryTravelDuration     Category = "travel_duration"
	CategoryOrdersDepartureGap Category = "orders_to_departure_gap"
	CategoryPerDiemMismatch    Category = "per_diem_mismatch"
	CategoryDistanceMismatch   Category = "distance_mismatch"
	CategoryTLETotalExceeded   Category = "tle_total_exceeded"
	CategoryPerDiemExcessive   Category = "per_diem_excessive"
	CategoryDependentCountHigh Category = "dependent_count_high"
	CategoryRankFormat         Category = "rank_format"
	CategoryBranchValidation   Category = "branch_validation"
)

// JTR citations attached to regulation-derived findings.
const (
	CitationTLE     = "JTR 054205"
	CitationPerDiem = "JTR 054401"
	CitationWeight  = "JTR 054703"
)

// ValidationFlag is a single finding against a claim record. Findings are
// advisory data, not faults: the engine reports them and the caller decides
// which severities block submission.
type ValidationFlag struct {
	Field        string   `json:"field"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
	JTRCitation  string   `json:"jtr_citation,omitempty"`
	Category     Category `json:"category"`
}

// countBySeverity tallies flags per severity level.
func countBySeverity(flags []ValidationFlag) (errors, warnings, infos int) {
	for _, f := range flags {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}

// hasCategory reports whether any flag carries the given category.
func hasCategory(flags []ValidationFlag, cat Category) bool {
	for _, f := range flags {
		if f.Category == cat {
			return true
		}
	}
	return false
}
