package shader

import (
	"io"
	"os"
)

// DefaultLogSize is the capacity of the buffer compile and link logs are
// copied into. Longer logs are truncated by the backend.
const DefaultLogSize = 512

// Option configures a Unit or Program.
type Option func(*config)

type config struct {
	diag    io.Writer
	logSize int
	verbose bool
}

// WithDiagnostics sets the sink that receives failure reports.
// Defaults to os.Stderr. A nil writer discards reports.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.diag = w
	}
}

// WithLogSize sets the capacity of the compile/link log buffer.
// Values below 1 keep the default.
func WithLogSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.logSize = n
		}
	}
}

// WithVerbose also reports successful source loads.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

func applyOptions(opts []Option) config {
	c := config{
		diag:    os.Stderr,
		logSize: DefaultLogSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
