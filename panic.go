package botlog

import "github.com/pkg/errors"

// PanicMessage is the message of events written by LogPanic.
const PanicMessage = "Uncaught panic"

// LogPanic logs a panic in progress at Fatal level, closes the sinks and
// panics again with the same value. It must be deferred directly:
//
//	logger := botlog.New(botlog.WithConsole())
//	defer logger.LogPanic()
//
// When there is no panic it does nothing.
func (l *Logger) LogPanic() {
	r := recover()
	if r == nil {
		return
	}

	l.Fatal(PanicMessage, ErrorKey, panicError(r))
	_ = l.Close()
	panic(r)
}

// panicError turns a recovered value into an error carrying the stack of the
// panicking goroutine.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return errors.WithStack(err)
	}
	return errors.Errorf("panic: %v", r)
}
