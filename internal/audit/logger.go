package audit

import (
	"github.com/rs/zerolog"
)

// Recorder writes the business audit trail. Entries are best-effort: a lost
// audit line never fails the lifecycle operation that produced it.
type Recorder interface {
	Record(event string, data map[string]any)
}

type Logger struct {
	log zerolog.Logger
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("type", "business").Logger()}
}

func (l *Logger) Record(event string, data map[string]any) {
	l.log.Info().Str("event", event).Fields(data).Msg(event)
}

var _ Recorder = (*Logger)(nil)
