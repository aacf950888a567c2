// Package log provides centralized debug logging for the compiler and the
// sfc command. Logging is off until SetOutput is called.
package log

import (
	"fmt"
	"io"
	"sync"
)

var (
	out io.Writer
	mu  sync.Mutex
)

// SetOutput sets the log destination. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug writes a debug log message if logging is enabled.
func Debug(format string, args ...any) {
	write("", format, args...)
}

// Parse writes a parse-prefixed log message.
func Parse(format string, args ...any) {
	write("[parse] ", format, args...)
}

// Compile writes a compile-prefixed log message.
func Compile(format string, args ...any) {
	write("[compile] ", format, args...)
}

// Config writes a config-prefixed log message.
func Config(format string, args ...any) {
	write("[config] ", format, args...)
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		fmt.Fprintf(out, prefix+format+"\n", args...)
	}
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}
