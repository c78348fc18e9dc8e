package engine

import (
	"strings"

	"go.trai.ch/usher/internal/core/ports"
)

// suppressedWarnLogger swallows warnings containing one known substring and
// forwards everything else untouched.
type suppressedWarnLogger struct {
	ports.Logger
	substring string
}

// SuppressWarning wraps l so that warnings containing substring are dropped.
// Info and Error are unaffected.
func SuppressWarning(l ports.Logger, substring string) ports.Logger {
	return &suppressedWarnLogger{
		Logger:    l,
		substring: substring,
	}
}

func (l *suppressedWarnLogger) Warn(msg string) {
	if strings.Contains(msg, l.substring) {
		return
	}
	l.Logger.Warn(msg)
}
