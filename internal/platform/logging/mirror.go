package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every emitted log line so it can be forwarded to a
// secondary sink (e.g. an OTLP log exporter). Mirrors must be fast and must
// never log through this package.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Pointer[MirrorFunc]

// SetMirror installs or clears (nil) the global log mirror.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

func mirrorLog(ctx context.Context, level Level, msg string, args ...any) {
	fn := mirror.Load()
	if fn == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	(*fn)(ctx, level, msg, args...)
}
