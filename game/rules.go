package game

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/othello/board"
)

// runLength walks from center in dir and returns the number of opponent
// discs that would be flipped in that direction: a contiguous run of
// opponent discs closed by a disc of the player to move. It returns 0 if
// the run hits an empty cell or the edge first.
func (p *Position) runLength(center board.Point, dir board.Point) int {
	mover := p.onTurn
	opp := mover.Opponent()
	pt := center.Add(dir)
	n := 0
	for pt.OnBoard() {
		switch p.grid.At(pt) {
		case opp:
			n++
		case mover:
			return n
		default:
			return 0
		}
		pt = pt.Add(dir)
	}
	return 0
}

// IsLegal reports whether the player to move may place a disc at pt.
func (p Position) IsLegal(pt board.Point) bool {
	if !pt.OnBoard() || p.grid.At(pt) != board.Empty {
		return false
	}
	for _, dir := range board.Directions {
		if p.runLength(pt, dir) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal point for the player to move, scanning
// rows then columns.
func (p Position) LegalMoves() []board.Point {
	var moves []board.Point
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			pt := board.Point{Row: r, Col: c}
			if p.IsLegal(pt) {
				moves = append(moves, pt)
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without building the list.
func (p Position) HasLegalMove() bool {
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			if p.IsLegal(board.Point{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

// CheckMoveList validates a move list supplied from outside: every entry
// must be legal and appear only once.
func (p Position) CheckMoveList(moves []board.Point) error {
	for i, m := range moves {
		if !p.IsLegal(m) {
			return fmt.Errorf("%w: supplied move %d (%v) for %v", ErrIllegalMove, i, m, p.onTurn)
		}
	}
	if dups := lo.FindDuplicates(moves); len(dups) > 0 {
		return fmt.Errorf("%w: supplied moves repeat %v", ErrIllegalMove, dups)
	}
	return nil
}
