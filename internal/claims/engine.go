package claims

import (
	"time"

	"go.uber.org/zap"

	"github.com/pcsready/claim-engine/internal/config"
)

// Engine validates PCS reimbursement claims against internal consistency
// rules and a simplified model of the Joint Travel Regulations. It is
// stateless and side-effect free: every method is a pure function of the
// record, the configured thresholds and the injected clock, so concurrent
// calls are safe by construction. The engine never fails on malformed
// input; each check degrades to skip-the-check or the most conservative
// default.
type Engine struct {
	cfg     config.EngineConfig
	scoring config.ScoringConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewEngine creates a validation engine with the given thresholds. The
// clock defaults to time.Now; tests override it with WithClock.
func NewEngine(cfg config.EngineConfig, scoring config.ScoringConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:     cfg,
		scoring: scoring,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the wall-clock source used by the staleness and gap
// rules and returns the engine for chaining.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	if now != nil {
		e.now = now
	}
	return e
}

// ValidateFieldLevel runs the cheap per-field checks intended for every
// keystroke: required-field presence, orders-date staleness, per-leg TLE
// caps and the weight-allowance lookup.
func (e *Engine) ValidateFieldLevel(rec ClaimRecord) []ValidationFlag {
	return e.runRules(fieldLevelRules, rec, e.now())
}

// ValidateCrossField runs the relationship checks intended for field blur:
// date ordering, travel-duration and lead-time sanity, per-diem and
// distance consistency. Rules whose inputs are not yet populated are
// skipped.
func (e *Engine) ValidateCrossField(rec ClaimRecord) []ValidationFlag {
	return e.runRules(crossFieldRules, rec, e.now())
}

// ValidateJTRCompliance runs the strictest layer, intended for save and
// submit: aggregate TLE ceiling, per-diem ceiling, dependent-count
// plausibility, and rank/branch format checks.
func (e *Engine) ValidateJTRCompliance(rec ClaimRecord) []ValidationFlag {
	return e.runRules(jtrComplianceRules, rec, e.now())
}

// ValidateClaim runs all three layers and concatenates their findings in a
// stable order: field-level first, then cross-field, then JTR compliance.
// The order matters only for presentation; scoring is order-independent.
func (e *Engine) ValidateClaim(rec ClaimRecord) []ValidationFlag {
	now := e.now()
	flags := make([]ValidationFlag, 0)
	flags = append(flags, e.runRules(fieldLevelRules, rec, now)...)
	flags = append(flags, e.runRules(crossFieldRules, rec, now)...)
	flags = append(flags, e.runRules(jtrComplianceRules, rec, now)...)

	errors, warnings, _ := countBySeverity(flags)
	e.logger.Debug("claim validated",
		zap.String("claim_name", rec.ClaimName),
		zap.Int("flags", len(flags)),
		zap.Int("errors", errors),
		zap.Int("warnings", warnings))

	return flags
}
