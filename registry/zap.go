package registry

import (
	"go.uber.org/zap"
)

// LogObserver logs handle lifecycle events through a zap logger. Violations
// log at Warn, everything else at Debug.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an observer writing to log. A nil log uses a no-op
// logger.
func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{log: log}
}

func (o *LogObserver) OnHandleEvent(e Event) {
	fields := []zap.Field{
		zap.Int("fd", int(e.Fd)),
		zap.String("event", e.Type.String()),
	}
	if e.Provenance.Site != "" {
		fields = append(fields, zap.String("acknowledged_at", e.Provenance.Site))
	}
	if e.Provenance.Reason != "" {
		fields = append(fields, zap.String("reason", e.Provenance.Reason))
	}
	if e.Detail != "" {
		fields = append(fields, zap.String("detail", e.Detail))
	}

	if e.Type == EventViolation {
		o.log.Warn("handle safety violation", fields...)
		return
	}
	o.log.Debug("handle event", fields...)
}
