package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ytget/click-coords/internal/model"
)

// Formatting constants
const (
	Indent        = "    "
	PairSeparator = ", "
	EmptyArray    = "[]"
)

// Marshal renders coordinates as a pretty-printed JSON array of [x, y]
// pairs, one pair per line, terminated by a newline
func Marshal(coords []model.Coordinate) []byte {
	var b bytes.Buffer
	if len(coords) == 0 {
		b.WriteString(EmptyArray)
		b.WriteByte('\n')
		return b.Bytes()
	}

	b.WriteString("[\n")
	for i, c := range coords {
		b.WriteString(Indent)
		b.WriteByte('[')
		b.WriteString(formatNumber(c.X))
		b.WriteString(PairSeparator)
		b.WriteString(formatNumber(c.Y))
		b.WriteByte(']')
		if i < len(coords)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")
	return b.Bytes()
}

// Write marshals coordinates and writes the whole document to w
func Write(w io.Writer, coords []model.Coordinate) error {
	data := Marshal(coords)
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return io.ErrShortWrite
	}
	return nil
}

// Parse decodes a JSON array of numeric pairs
func Parse(data []byte) ([]model.Coordinate, error) {
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("invalid coordinate document: %w", err)
	}

	coords := make([]model.Coordinate, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("entry %d: expected 2 numbers, got %d", i, len(p))
		}
		coords = append(coords, model.Coordinate{X: p[0], Y: p[1]})
	}
	return coords, nil
}

// formatNumber renders v in plain decimal notation with the fewest digits
// that round-trip
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
