// Package game holds the Othello rules: a Position, which moves are legal
// in it, and what playing a move does to it.
package game

import (
	"errors"
	"fmt"

	"github.com/domino14/othello/board"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrMalformedPosition = errors.New("malformed position")
)

// Position is a board, its disc counts and the player to move. It is a
// value type; PlayMove returns a new Position and never touches the
// receiver, so every search branch owns its copy.
type Position struct {
	grid   board.Grid
	discs  [3]int
	onTurn board.SpotState
}

// StartingPosition is the standard setup with black to move.
func StartingPosition() Position {
	return Position{
		grid:   board.StartingGrid(),
		discs:  [3]int{board.Dim*board.Dim - 4, 2, 2},
		onTurn: board.Black,
	}
}

// NewPosition builds a Position from a grid, tallying the disc counts.
func NewPosition(grid board.Grid, onTurn board.SpotState) (Position, error) {
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			if !grid[r][c].Valid() {
				return Position{}, fmt.Errorf("%w: cell %v holds %v",
					ErrMalformedPosition, board.Point{Row: r, Col: c}, grid[r][c])
			}
		}
	}
	return NewPositionWithCounts(grid, grid.Tally(), onTurn)
}

// NewPositionWithCounts builds a Position with externally supplied disc
// counts (indexed by SpotState), rejecting counts that do not match the
// grid.
func NewPositionWithCounts(grid board.Grid, counts [3]int, onTurn board.SpotState) (Position, error) {
	if !onTurn.IsPlayer() {
		return Position{}, fmt.Errorf("%w: player to move is %v", ErrMalformedPosition, onTurn)
	}
	if counts[0]+counts[1]+counts[2] != board.Dim*board.Dim {
		return Position{}, fmt.Errorf("%w: disc counts %v do not sum to %d",
			ErrMalformedPosition, counts, board.Dim*board.Dim)
	}
	if tally := grid.Tally(); tally != counts {
		return Position{}, fmt.Errorf("%w: disc counts %v, grid holds %v",
			ErrMalformedPosition, counts, tally)
	}
	return Position{grid: grid, discs: counts, onTurn: onTurn}, nil
}

func (p Position) OnTurn() board.SpotState {
	return p.onTurn
}

func (p Position) At(pt board.Point) board.SpotState {
	return p.grid.At(pt)
}

// Grid returns a copy of the board.
func (p Position) Grid() board.Grid {
	return p.grid
}

func (p Position) DiscCount(s board.SpotState) int {
	if !s.Valid() {
		return 0
	}
	return p.discs[s]
}

// DiscCounts is indexed by SpotState.
func (p Position) DiscCounts() [3]int {
	return p.discs
}

// DiscsOnBoard is the number of non-empty cells.
func (p Position) DiscsOnBoard() int {
	return p.discs[board.Black] + p.discs[board.White]
}

// PlayMove places a disc for the player to move at pt, flips every
// bracketed run and hands the turn over. If the opponent then has no
// legal move the turn comes straight back; if neither side can move the
// returned Position is over.
func (p Position) PlayMove(pt board.Point) (Position, error) {
	if !p.IsLegal(pt) {
		return p, fmt.Errorf("%w: %v for %v", ErrIllegalMove, pt, p.onTurn)
	}
	mover := p.onTurn
	opp := mover.Opponent()

	next := p
	next.grid.Set(pt, mover)
	next.discs[mover]++
	next.discs[board.Empty]--
	flipped := next.flipDiscs(pt)
	next.discs[mover] += flipped
	next.discs[opp] -= flipped

	next.onTurn = opp
	if !next.HasLegalMove() {
		next.onTurn = mover
	}
	return next, nil
}

// flipDiscs turns over every opponent run bracketed from center and
// returns how many discs changed color.
func (p *Position) flipDiscs(center board.Point) int {
	mover := p.onTurn
	flipped := 0
	for _, dir := range board.Directions {
		n := p.runLength(center, dir)
		pt := center
		for i := 0; i < n; i++ {
			pt = pt.Add(dir)
			p.grid.Set(pt, mover)
		}
		flipped += n
	}
	return flipped
}

// GameOver is true when neither side has a legal move. PlayMove only
// leaves the player to move without moves in that case.
func (p Position) GameOver() bool {
	if p.HasLegalMove() {
		return false
	}
	p.onTurn = p.onTurn.Opponent()
	return !p.HasLegalMove()
}

// Winner compares disc counts. It returns Empty for a draw and does not
// check whether the game is actually over.
func (p Position) Winner() board.SpotState {
	switch {
	case p.discs[board.Black] > p.discs[board.White]:
		return board.Black
	case p.discs[board.White] > p.discs[board.Black]:
		return board.White
	}
	return board.Empty
}

// WithOnTurn returns a copy with a different player to move.
func (p Position) WithOnTurn(s board.SpotState) (Position, error) {
	if !s.IsPlayer() {
		return p, fmt.Errorf("%w: player to move is %v", ErrMalformedPosition, s)
	}
	p.onTurn = s
	return p, nil
}
