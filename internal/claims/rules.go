package claims

import "time"

// checkFunc evaluates one rule against a record. Rules receive the engine
// for its thresholds and the injected "now" so date rules stay
// deterministic under test.
type checkFunc func(e *Engine, rec ClaimRecord, now time.Time) []ValidationFlag

// rule is a single named validation check. Each validator layer is an
// ordered table of rules evaluated uniformly; rules are independent and
// never short-circuit one another.
type rule struct {
	name  string
	check checkFunc
}

// runRules evaluates a rule table in order and concatenates the findings.
func (e *Engine) runRules(rules []rule, rec ClaimRecord, now time.Time) []ValidationFlag {
	flags := make([]ValidationFlag, 0)
	for _, r := range rules {
		flags = append(flags, r.check(e, rec, now)...)
	}
	return flags
}
