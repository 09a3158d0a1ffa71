package logger

import (
	"crm-portal-backend/internal/scope"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging across the CRM services
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithScope annotates the logger with the caller's session, so every line
// written while handling a request carries the acting user and workspace
func (l *Logger) WithScope(sc scope.Scope) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(logrus.Fields{
			"user_id":      sc.UserID,
			"workspace_id": sc.WorkspaceID,
		}),
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
