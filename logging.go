package deadtime

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger holds the logger for the package's advisory messages.
// Unset means slog.Default, resolved at call time so late handler
// installation is picked up.
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger routes the package's informational and warning messages to l.
// Passing nil restores the default logger. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
