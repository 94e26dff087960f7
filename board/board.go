package board

import "fmt"

// Dim is the width and height of an Othello board.
const Dim = 8

// SpotState is the content of a single board cell. The numeric values
// match the controller's file format (0 empty, 1 black, 2 white).
type SpotState uint8

const (
	Empty SpotState = iota
	Black
	White
)

func (s SpotState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("SpotState(%d)", uint8(s))
}

// Opponent returns the other playing color. Empty has no opponent and
// maps to itself.
func (s SpotState) Opponent() SpotState {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return s
}

// IsPlayer is true for Black and White.
func (s SpotState) IsPlayer() bool {
	return s == Black || s == White
}

// Valid is true for the three defined states.
func (s SpotState) Valid() bool {
	return s <= White
}

// DisplayString is the single-character form used by ToDisplayText.
func (s SpotState) DisplayString() string {
	switch s {
	case Black:
		if ColorSupport {
			return "\x1b[1;30;47mX\x1b[0m"
		}
		return "X"
	case White:
		if ColorSupport {
			return "\x1b[1;37;40mO\x1b[0m"
		}
		return "O"
	}
	return "."
}

// Grid is an 8x8 array of spot states, indexed [row][col]. It is a value
// type: assigning a Grid copies every cell.
type Grid [Dim][Dim]SpotState

// StartingGrid returns the standard Othello setup.
func StartingGrid() Grid {
	var g Grid
	g[3][3], g[4][4] = White, White
	g[3][4], g[4][3] = Black, Black
	return g
}

func (g *Grid) At(p Point) SpotState {
	return g[p.Row][p.Col]
}

func (g *Grid) Set(p Point, s SpotState) {
	g[p.Row][p.Col] = s
}

// Tally counts the cells in each state. The result is indexed by
// SpotState and always sums to Dim*Dim for a well-formed grid.
func (g *Grid) Tally() [3]int {
	var counts [3]int
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			s := g[r][c]
			if s.Valid() {
				counts[s]++
			}
		}
	}
	return counts
}

// Corners lists the four corner cells.
var Corners = [4]Point{{0, 0}, {0, Dim - 1}, {Dim - 1, 0}, {Dim - 1, Dim - 1}}

// CornerNeighbors holds, for each entry of Corners, the three cells that
// touch it.
var CornerNeighbors = [4][3]Point{
	{{0, 1}, {1, 1}, {1, 0}},
	{{0, 6}, {1, 6}, {1, 7}},
	{{7, 1}, {6, 1}, {6, 0}},
	{{6, 7}, {6, 6}, {7, 6}},
}
