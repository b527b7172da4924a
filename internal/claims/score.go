package claims

// ConfidenceLevel is the qualitative classification of a confidence score.
type ConfidenceLevel string

const (
	LevelExcellent ConfidenceLevel = "excellent"
	LevelGood      ConfidenceLevel = "good"
	LevelFair      ConfidenceLevel = "fair"
	LevelNeedsWork ConfidenceLevel = "needs_work"
)

// ConfidenceFactors are named completeness/consistency signals surfaced
// alongside the score. HasWeighTickets and ReceiptsComplete are fixed false
// placeholders: the record carries no document inventory, so the engine
// cannot derive them until the claim gains those fields.
type ConfidenceFactors struct {
	NoDateIssues     bool `json:"no_date_issues"`
	NoDistanceIssues bool `json:"no_distance_issues"`
	HasWeighTickets  bool `json:"has_weigh_tickets"`
	ReceiptsComplete bool `json:"receipts_complete"`
}

// ConfidenceAssessment converts a flag list into a submission-gating score.
type ConfidenceAssessment struct {
	Overall         int               `json:"overall"`
	Factors         ConfidenceFactors `json:"factors"`
	Level           ConfidenceLevel   `json:"level"`
	Recommendations []string          `json:"recommendations"`
}

// Triage guidance attached to assessments. Per-flag remediation lives on
// each flag's SuggestedFix; these are the generic next steps.
const (
	RecommendFixErrors      = "Fix all errors before submitting your claim"
	RecommendReviewWarnings = "Review warnings and verify the flagged entries"
	RecommendAddDetail      = "Add more detail to strengthen your claim"
)

// CalculateConfidenceScore derives the 0-100 confidence score and
// qualitative level from a flag list. Scoring is order-independent: errors
// subtract the error penalty, warnings the warning penalty, info flags
// nothing, and the result is clamped to [0, 100].
func (e *Engine) CalculateConfidenceScore(flags []ValidationFlag) ConfidenceAssessment {
	errors, warnings, _ := countBySeverity(flags)

	overall := 100 - errors*e.scoring.ErrorPenalty - warnings*e.scoring.WarningPenalty
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	var level ConfidenceLevel
	switch {
	case overall >= e.scoring.ExcellentThreshold:
		level = LevelExcellent
	case overall >= e.scoring.GoodThreshold:
		level = LevelGood
	case overall >= e.scoring.FairThreshold:
		level = LevelFair
	default:
		level = LevelNeedsWork
	}

	recommendations := make([]string, 0, 3)
	if errors > 0 {
		recommendations = append(recommendations, RecommendFixErrors)
	}
	if warnings > 0 {
		recommendations = append(recommendations, RecommendReviewWarnings)
	}
	if overall < e.scoring.DetailThreshold {
		recommendations = append(recommendations, RecommendAddDetail)
	}

	return ConfidenceAssessment{
		Overall: overall,
		Factors: ConfidenceFactors{
			NoDateIssues:     !hasCategory(flags, CategoryDateLogic),
			NoDistanceIssues: !hasCategory(flags, CategoryDistanceMismatch),
			HasWeighTickets:  false,
			ReceiptsComplete: false,
		},
		Level:           level,
		Recommendations: recommendations,
	}
}
