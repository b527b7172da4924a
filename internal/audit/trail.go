package audit

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pcsready/claim-engine/internal/claims"
	"github.com/pcsready/claim-engine/internal/config"
)

// Event is one recorded validation. The trail exists for operator review of
// what the engine was asked and what it answered; claim contents are not
// retained, only the outcome summary.
type Event struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Layer     string                 `json:"layer"`
	ClaimName string                 `json:"claim_name"`
	FlagCount int                    `json:"flag_count"`
	Errors    int                    `json:"errors"`
	Warnings  int                    `json:"warnings"`
	Score     int                    `json:"score"`
	Level     claims.ConfidenceLevel `json:"level,omitempty"`
}

// Filters narrows a trail query.
type Filters struct {
	Layer string
	Limit int
}

// Statistics summarizes the retained trail.
type Statistics struct {
	TotalEvents   int            `json:"total_events"`
	EventsByLayer map[string]int `json:"events_by_layer"`
	TotalFlags    int            `json:"total_flags"`
	TotalErrors   int            `json:"total_errors"`
	TotalWarnings int            `json:"total_warnings"`
	OldestEvent   time.Time      `json:"oldest_event,omitempty"`
	NewestEvent   time.Time      `json:"newest_event,omitempty"`
}

// Trail is a bounded in-memory audit log of validation events. Persistence
// is the caller's responsibility; the trail holds the most recent N events
// and drops the oldest beyond capacity.
type Trail struct {
	cfg    config.AuditConfig
	logger *zap.Logger

	mu     sync.RWMutex
	events []Event
	head   int
	filled bool
}

// NewTrail creates an audit trail with the configured capacity.
func NewTrail(cfg config.AuditConfig, logger *zap.Logger) *Trail {
	if logger == nil {
		logger = zap.NewNop()
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 1
	}
	return &Trail{
		cfg:    cfg,
		logger: logger,
		events: make([]Event, capacity),
	}
}

// Record appends a validation event. Disabled trails drop events silently.
func (t *Trail) Record(layer, claimName string, flags []claims.ValidationFlag, assessment *claims.ConfidenceAssessment) Event {
	ev := Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Layer:     layer,
		ClaimName: claimName,
		FlagCount: len(flags),
	}
	for _, f := range flags {
		switch f.Severity {
		case claims.SeverityError:
			ev.Errors++
		case claims.SeverityWarning:
			ev.Warnings++
		}
	}
	if assessment != nil {
		ev.Score = assessment.Overall
		ev.Level = assessment.Level
	}

	if !t.cfg.Enabled {
		return ev
	}

	t.mu.Lock()
	t.events[t.head] = ev
	t.head++
	if t.head == len(t.events) {
		t.head = 0
		t.filled = true
	}
	t.mu.Unlock()

	t.logger.Debug("validation audited",
		zap.String("event_id", ev.ID),
		zap.String("layer", layer),
		zap.Int("flags", ev.FlagCount),
		zap.Int("score", ev.Score))

	return ev
}

// Events returns retained events newest-first, applying the filters.
func (t *Trail) Events(f Filters) []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Event, 0)
	for _, ev := range t.snapshotLocked() {
		if f.Layer != "" && !strings.EqualFold(f.Layer, ev.Layer) {
			continue
		}
		out = append(out, ev)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

// Statistics aggregates the retained trail.
func (t *Trail) Statistics() Statistics {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := Statistics{EventsByLayer: make(map[string]int)}
	for _, ev := range t.snapshotLocked() {
		stats.TotalEvents++
		stats.EventsByLayer[ev.Layer]++
		stats.TotalFlags += ev.FlagCount
		stats.TotalErrors += ev.Errors
		stats.TotalWarnings += ev.Warnings
		if stats.NewestEvent.IsZero() {
			stats.NewestEvent = ev.Timestamp
		}
		stats.OldestEvent = ev.Timestamp
	}
	return stats
}

// snapshotLocked returns retained events newest-first. Callers hold t.mu.
func (t *Trail) snapshotLocked() []Event {
	size := t.head
	if t.filled {
		size = len(t.events)
	}
	out := make([]Event, 0, size)
	for i := 1; i <= size; i++ {
		idx := t.head - i
		if idx < 0 {
			idx += len(t.events)
		}
		out = append(out, t.events[idx])
	}
	return out
}
