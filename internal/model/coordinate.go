package model

// Coordinate is a click position expressed as a fraction of the image
// width (X) and height (Y). Values are not clamped.
type Coordinate struct {
	X float64
	Y float64
}

// NewCoordinate converts a pixel position on a width x height image into a
// fractional coordinate. Callers must pass non-zero dimensions.
func NewCoordinate(px, py, width, height int) Coordinate {
	return Coordinate{
		X: float64(px) / float64(width),
		Y: float64(py) / float64(height),
	}
}

// CoordinateLog is an ordered, append-only list of coordinates
type CoordinateLog struct {
	entries []Coordinate
}

// NewCoordinateLog creates an empty log
func NewCoordinateLog() *CoordinateLog {
	return &CoordinateLog{entries: make([]Coordinate, 0)}
}

// Append records a coordinate at the end of the log
func (l *CoordinateLog) Append(c Coordinate) {
	l.entries = append(l.entries, c)
}

// Len returns the number of recorded coordinates
func (l *CoordinateLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded coordinates in insertion order
func (l *CoordinateLog) Entries() []Coordinate {
	out := make([]Coordinate, len(l.entries))
	copy(out, l.entries)
	return out
}
