// Package heightmap turns a text elevation map into a grid.Grid of
// elevations plus the positions of the start and target markers.
//
// Each line is a row. 'a'..'z' map to elevations 0..25, 'S' marks the start
// (elevation 0) and 'E' marks the target (elevation 25). Any other byte is a
// parse error.
package heightmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hillclimb/grid"
)

// Elevation bounds.
const (
	Lowest  = 0
	Highest = 25
)

// Markers recognised in the input.
const (
	StartMarker  = 'S'
	TargetMarker = 'E'
)

var (
	// ErrInvalidChar indicates a byte outside {'S', 'E', 'a'..'z'}.
	ErrInvalidChar = errors.New("heightmap: invalid character")
	// ErrNoStart indicates the input has no 'S' marker.
	ErrNoStart = errors.New("heightmap: no start marker")
	// ErrNoTarget indicates the input has no 'E' marker.
	ErrNoTarget = errors.New("heightmap: no target marker")
)

// ParseError locates an invalid character. Line and Col are 1-based.
type ParseError struct {
	Line, Col int
	Char      byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("heightmap: invalid character %q at line %d, column %d", e.Char, e.Line, e.Col)
}

// Unwrap lets errors.Is match ErrInvalidChar.
func (e *ParseError) Unwrap() error { return ErrInvalidChar }

// Heightmap is a parsed elevation map. It is not modified after parsing.
type Heightmap struct {
	Elevations *grid.Grid[int]
	Start      grid.Coord
	Target     grid.Coord
}

// Elevation converts one input byte to its elevation.
func Elevation(c byte) (int, error) {
	switch {
	case c == StartMarker:
		return Lowest, nil
	case c == TargetMarker:
		return Highest, nil
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidChar, c)
	}
}

// Parse reads a heightmap from r. Blank lines and a trailing '\r' on each
// line are ignored.
// If a marker appears more than once the last occurrence wins.
func Parse(r io.Reader) (*Heightmap, error) {
	var (
		b                 = grid.NewBuilder[int]()
		start, target     grid.Coord
		hasStart, hasTarg bool
		row               []int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		y := b.Rows()
		row = make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch c {
			case StartMarker:
				start, hasStart = grid.C(x, y), true
			case TargetMarker:
				target, hasTarg = grid.C(x, y), true
			}
			elev, err := Elevation(c)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Col: x + 1, Char: c}
			}
			row[x] = elev
		}
		if err := b.AppendRow(row); err != nil {
			return nil, fmt.Errorf("heightmap: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if !hasTarg {
		return nil, ErrNoTarget
	}

	return &Heightmap{Elevations: g, Start: start, Target: target}, nil
}

// ParseString parses a heightmap held in memory.
func ParseString(s string) (*Heightmap, error) {
	return Parse(strings.NewReader(s))
}

// String renders the heightmap back to its text form.
func (h *Heightmap) String() string {
	var sb strings.Builder
	g := h.Elevations
	sb.Grow(g.Len() + g.Height())
	for c, v := range g.All() {
		switch c {
		case h.Start:
			sb.WriteByte(StartMarker)
		case h.Target:
			sb.WriteByte(TargetMarker)
		default:
			sb.WriteByte(byte('a' + v))
		}
		if c.X == g.Width()-1 && c.Y < g.Height()-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
