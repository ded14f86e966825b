// Package selflog reports botlog's own failures.
//
// Formatters and sinks never panic or return errors to the code that logs;
// a big number that cannot be stringified or properties that cannot be
// serialized are handled locally. When selflog is enabled those incidents are
// written out so that they can still be diagnosed:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Messages are formatted as
//
//	2025-01-29T15:30:45Z [component] message details
//
// Setting BOTLOG_SELFLOG to "stderr", "stdout" or a file path enables it at
// startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// EnvVar names the environment variable read at startup.
const EnvVar = "BOTLOG_SELFLOG"

var output atomic.Pointer[func(string)]

// Enable activates self-logging to the provided writer.
// The writer should be thread-safe or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	fn := func(line string) { fmt.Fprintln(w, line) }
	output.Store(&fn)
}

// EnableFunc activates self-logging using a callback function.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	output.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	output.Store(nil)
}

// IsEnabled returns true if selflog is currently enabled. Use it to skip
// formatting work on hot paths.
func IsEnabled() bool {
	return output.Load() != nil
}

// Printf logs an internal diagnostic message. The format should start with
// the component in square brackets, e.g. "[console] write failed: %v".
func Printf(format string, args ...any) {
	fn := output.Load()
	if fn == nil {
		return
	}
	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	(*fn)(line)
}

// EnableFromEnv enables self-logging according to an BOTLOG_SELFLOG style
// value: "stderr", "stdout" or a file path. An empty value does nothing.
func EnableFromEnv(dest string) error {
	switch dest {
	case "":
		return nil
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open selflog file: %w", err)
		}
		Enable(Sync(f))
	}
	return nil
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer to make it thread-safe.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	_ = EnableFromEnv(os.Getenv(EnvVar))
}
