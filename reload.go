package shader

// Reloader swaps in a rebuilt program when its source files change.
// Poll must be called from the thread that owns the backend.
type Reloader struct {
	program   *Program
	watcher   *Watcher
	requested bool
}

// NewReloader manages p. The watcher may be nil, in which case only
// explicit requests trigger a rebuild.
func NewReloader(p *Program, w *Watcher) *Reloader {
	return &Reloader{program: p, watcher: w}
}

// Program returns the current program.
func (r *Reloader) Program() *Program { return r.program }

// Request asks for a rebuild on the next Poll.
func (r *Reloader) Request() { r.requested = true }

// Poll rebuilds the program if a rebuild is due. A rebuild that fails setup
// is discarded and the current program stays in place. Poll reports whether
// the current program was replaced.
func (r *Reloader) Poll() bool {
	due := r.requested
	r.requested = false
	if r.watcher != nil && r.watcher.Changed() {
		due = true
	}
	if !due {
		return false
	}

	next := r.program.Rebuild()
	if !next.SetupOK() {
		next.Delete()
		return false
	}

	r.program.Delete()
	r.program = next
	return true
}
