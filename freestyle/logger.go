package freestyle

import "log"

// Logger is a minimal function-pointer logger, in place of a third-party
// logging library: two format-style slots, one for verbose diagnostics and
// one for errors a caller would actually want surfaced. A nil *Logger is
// always a no-op, so Ctx.logger can be left unset without guarding every
// call site.
type Logger struct {
	Verbosef func(format string, args ...any)
	Errorf   func(format string, args ...any)
}

// DefaultLogger returns a Logger backed by the standard log package, with
// verbose output prefixed distinctly from error output.
func DefaultLogger() *Logger {
	return &Logger{
		Verbosef: func(format string, args ...any) { log.Printf("[freestyle] "+format, args...) },
		Errorf:   func(format string, args ...any) { log.Printf("[freestyle] ERROR: "+format, args...) },
	}
}

func (l *Logger) verbosef(format string, args ...any) {
	if l == nil || l.Verbosef == nil {
		return
	}
	l.Verbosef(format, args...)
}

func (l *Logger) errorf(format string, args ...any) {
	if l == nil || l.Errorf == nil {
		return
	}
	l.Errorf(format, args...)
}
