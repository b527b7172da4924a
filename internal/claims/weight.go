package claims

// weightAllowances maps canonical pay grades to the maximum authorized
// household-goods weight in pounds (JTR 054703). Allowances are
// non-decreasing with seniority within each track; officers start from a
// higher baseline than enlisted of comparable tenure.
var weightAllowances = map[string]int{
	"E1": 5000,
	"E2": 5000,
	"E3": 5000,
	"E4": 7000,
	"E5": 7000,
	"E6": 8000,
	"E7": 11000,
	"E8": 12000,
	"E9": 13000,

	"O1":  8000,
	"O2":  9500,
	"O3":  11000,
	"O4":  12500,
	"O5":  13500,
	"O6":  14500,
	"O7":  16000,
	"O8":  17000,
	"O9":  17500,
	"O10": 18000,
}

// WeightAllowance returns the maximum authorized shipment weight for a pay
// grade. Unknown or malformed codes fall back to the most conservative
// allowance so the weight check stays advisory when rank data is
// unreliable.
func WeightAllowance(rank Rank, fallback int) int {
	if lbs, ok := weightAllowances[rank.Canonical()]; ok {
		return lbs
	}
	return fallback
}
