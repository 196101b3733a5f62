package scan

import (
	"log/slog"
	"sync/atomic"
)

// silent is in effect until SetLogger installs something else.
var silent = slog.New(slog.DiscardHandler)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger routes scan's log records to l. Passing nil silences them
// again, which is also the initial state. scan only logs at
// [slog.LevelDebug], mostly around clip construction.
//
// SetLogger may run while other goroutines rasterize.
//
//	scan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	pkgLogger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return silent
}
