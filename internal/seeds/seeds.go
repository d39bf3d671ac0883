// Package seeds collects the ordered coordinate sequence that drives
// seed-based segmentation.
//
// The interactive surface is an input stream of "x y" pairs, one per line.
// The collector returns a finished, immutable sequence to the caller; the
// growth engine never reads the input surface itself.
package seeds

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/segtools/regiongrow/internal/segment"
)

// Terminator is the control word that closes seed input before EOF.
const Terminator = "done"

// Collect reads seed coordinates from r, one "x y" pair per line, until
// EOF or a line consisting of the terminator word. Blank lines and lines
// starting with '#' are skipped. Any other malformed line is an error.
func Collect(r io.Reader) ([]segment.Point, error) {
	var pts []segment.Point
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.EqualFold(text, Terminator) {
			break
		}

		var p segment.Point
		if _, err := fmt.Sscanf(text, "%d %d", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("line %d: expected \"x y\", got %q", line, text)
		}
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seeds: %w", err)
	}
	return pts, nil
}

// Validate checks every seed against the image dimensions. Out-of-bounds
// seeds violate the engine's caller contract, so they are rejected before
// segmentation starts rather than recovered from inside it.
func Validate(pts []segment.Point, w, h int) error {
	for i, p := range pts {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return fmt.Errorf("seed %d at (%d,%d) outside image bounds %dx%d", i+1, p.X, p.Y, w, h)
		}
	}
	return nil
}
