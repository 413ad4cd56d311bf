// Package shutdown translates termination signals into context
// cancellation so the display loop can unwind cleanly.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM, and a stop
// function releasing the signal handler. Ctrl+C normally arrives as a key
// press while the terminal is raw; the signal path covers TERM and any
// INT delivered outside raw mode, guaranteeing terminal restore either way.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
