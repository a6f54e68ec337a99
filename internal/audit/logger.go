package audit

import "log/slog"

// Logger writes audit events as structured log records.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log.With("component", "audit")}
}

func (l *Logger) Log(ev Event) error {
	attrs := []any{"action", ev.Action, "entity", ev.Entity}
	if ev.EntityID != nil {
		attrs = append(attrs, "entity_id", *ev.EntityID)
	}
	if ev.UserID != nil {
		attrs = append(attrs, "user_id", *ev.UserID)
	}
	if ev.Metadata != nil {
		attrs = append(attrs, "metadata", ev.Metadata)
	}
	l.log.Info("audit", attrs...)
	return nil
}
