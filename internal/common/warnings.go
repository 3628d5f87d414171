package common

import (
	"log/slog"
	"sync"
)

// Warning codes for lookup misses that resolve to a documented default.
const (
	WarnUnmappedClass     = "unmapped_class_of_interest"
	WarnMissingTable      = "missing_breakpoint_table"
	WarnScoreOutOfRange   = "score_out_of_range"
	WarnUnresolvedSession = "unresolved_exam_session"
	WarnUnknownTrack      = "unknown_tuition_track"
)

// Warning records a single lookup miss that was resolved with a default value.
type Warning struct {
	Code    string
	Message string
}

// Warnings collects lookup-miss warnings so callers and tests can observe
// fallbacks instead of scraping console output. All methods are safe for
// concurrent use.
type Warnings struct {
	logger *slog.Logger
	items  []Warning
	mu     sync.Mutex
}

// NewWarnings creates a collector that also mirrors every warning to logger.
// A nil logger falls back to slog.Default().
func NewWarnings(logger *slog.Logger) *Warnings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Warnings{logger: logger}
}

// Add records a warning and logs it.
func (w *Warnings) Add(code, message string, args ...any) {
	w.mu.Lock()
	w.items = append(w.items, Warning{Code: code, Message: message})
	w.mu.Unlock()

	logArgs := append([]any{"code", code}, args...)
	w.logger.Warn(message, logArgs...)
}

// Items returns a copy of all recorded warnings.
func (w *Warnings) Items() []Warning {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]Warning, len(w.items))
	copy(items, w.items)
	return items
}

// Has reports whether a warning with the given code was recorded.
func (w *Warnings) Has(code string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.Code == code {
			return true
		}
	}
	return false
}

// Reset clears all recorded warnings.
func (w *Warnings) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}
