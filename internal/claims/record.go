package claims

import (
	"strings"
	"time"
	"unicode"
)

// ClaimRecord is the flat claim submission the engine validates. It mirrors
// the PCS reimbursement form: date fields are YYYY-MM-DD strings where ""
// means not yet entered, and numeric fields treat zero as a legitimate
// value rather than an omission.
type ClaimRecord struct {
	ClaimName string `json:"claim_name"`

	OrdersDate    string `json:"orders_date"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`

	OriginBase      string `json:"origin_base"`
	DestinationBase string `json:"destination_base"`

	TravelMethod    string `json:"travel_method"`
	DependentsCount int    `json:"dependents_count"`
	Rank            string `json:"rank"`
	Branch          string `json:"branch"`

	TLEOriginNights      int     `json:"tle_origin_nights"`
	TLEDestinationNights int     `json:"tle_destination_nights"`
	TLEOriginRate        float64 `json:"tle_origin_rate"`
	TLEDestinationRate   float64 `json:"tle_destination_rate"`

	MALTDistance     float64 `json:"malt_distance"`
	PerDiemDays      int     `json:"per_diem_days"`
	FuelReceiptTotal float64 `json:"fuel_receipt_total"`

	EstimatedWeight  float64 `json:"estimated_weight"`
	ActualWeight     float64 `json:"actual_weight"`
	OfficialDistance float64 `json:"official_distance"`
}

// Field name constants used on ValidationFlag.Field so the form UI can
// highlight the offending input. They match the ClaimRecord JSON tags.
const (
	FieldClaimName            = "claim_name"
	FieldOrdersDate           = "orders_date"
	FieldDepartureDate        = "departure_date"
	FieldArrivalDate          = "arrival_date"
	FieldOriginBase           = "origin_base"
	FieldDestinationBase      = "destination_base"
	FieldTravelMethod         = "travel_method"
	FieldDependentsCount      = "dependents_count"
	FieldRank                 = "rank"
	FieldBranch               = "branch"
	FieldTLEOriginNights      = "tle_origin_nights"
	FieldTLEDestinationNights = "tle_destination_nights"
	FieldMALTDistance         = "malt_distance"
	FieldPerDiemDays          = "per_diem_days"
	FieldEstimatedWeight      = "estimated_weight"
)

// DateLayout is the calendar-date format used by all timeline fields.
const DateLayout = "2006-01-02"

// parseDate returns the parsed date and true when the value is a well-formed
// calendar date. Empty and malformed values report false so rules can skip
// rather than fail.
func parseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Branch identifies one of the six armed services.
type Branch string

const (
	BranchArmy        Branch = "Army"
	BranchNavy        Branch = "Navy"
	BranchAirForce    Branch = "Air Force"
	BranchMarineCorps Branch = "Marine Corps"
	BranchCoastGuard  Branch = "Coast Guard"
	BranchSpaceForce  Branch = "Space Force"
)

// Branches lists every valid service branch.
var Branches = []Branch{
	BranchArmy,
	BranchNavy,
	BranchAirForce,
	BranchMarineCorps,
	BranchCoastGuard,
	BranchSpaceForce,
}

// ParseBranch matches a free-text branch value against the six services,
// ignoring case and surrounding whitespace.
func ParseBranch(value string) (Branch, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, b := range Branches {
		if v == strings.ToLower(string(b)) {
			return b, true
		}
	}
	return "", false
}

// Rank is a pay-grade code such as "E-5" or "O-3".
type Rank string

// Canonical strips punctuation and whitespace and uppercases the code, so
// "e-5", "E 5" and "E5" all canonicalize to "E5".
func (r Rank) Canonical() string {
	var sb strings.Builder
	for _, c := range string(r) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			sb.WriteRune(unicode.ToUpper(c))
		}
	}
	return sb.String()
}

// canonicalRanks is the closed pay-grade enumeration: E1..E9 and O1..O10.
var canonicalRanks = map[string]struct{}{
	"E1": {}, "E2": {}, "E3": {}, "E4": {}, "E5": {},
	"E6": {}, "E7": {}, "E8": {}, "E9": {},
	"O1": {}, "O2": {}, "O3": {}, "O4": {}, "O5": {},
	"O6": {}, "O7": {}, "O8": {}, "O9": {}, "O10": {},
}

// IsCanonical reports whether the rank canonicalizes to a recognized pay
// grade.
func (r Rank) IsCanonical() bool {
	_, ok := canonicalRanks[r.Canonical()]
	return ok
}

// isBlank reports whether a string field counts as not entered.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
