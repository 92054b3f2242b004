package ply

// locationTracker records the 1-based number of the line currently being
// consumed. It starts below the first line and is advanced before each
// read, so diagnostics can cite the offending line. It never influences
// parsing decisions.
type locationTracker struct {
	line int
}

func (l *locationTracker) advance() { l.line++ }
