package board

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	ColorSupport = os.Getenv("OTHELLO_DISABLE_COLOR") != "on"
)

var ErrBadCoordinate = errors.New("bad coordinate")

// A Point is a single square on the board, as a (row, column) pair.
type Point struct {
	Row int
	Col int
}

// Directions are the eight compass steps, in the order they are walked
// when checking and flipping.
var Directions = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (p Point) Add(o Point) Point {
	return Point{p.Row + o.Row, p.Col + o.Col}
}

func (p Point) Sub(o Point) Point {
	return Point{p.Row - o.Row, p.Col - o.Col}
}

func (p Point) OnBoard() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// String prints the point in algebraic form, e.g. d3 for row 2 col 3.
func (p Point) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// PointFromString parses an algebraic coordinate such as "d3" or "D3".
// A raw "row,col" pair is accepted too.
func PointFromString(s string) (Point, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if r, c, ok := strings.Cut(s, ","); ok {
		row, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
		}
		col, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
		}
		p := Point{row, col}
		if !p.OnBoard() {
			return Point{}, fmt.Errorf("%w: %q is off the board", ErrBadCoordinate, s)
		}
		return p, nil
	}
	if len(s) != 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	p := Point{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	if !p.OnBoard() {
		return Point{}, fmt.Errorf("%w: %q is off the board", ErrBadCoordinate, s)
	}
	return p, nil
}
