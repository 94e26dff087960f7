package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/othello/board"
)

// ToDisplayText turns the position into a displayable string: the board,
// followed by the disc counts and whose turn it is.
func (p Position) ToDisplayText() string {
	bt := p.grid.ToDisplayText()
	var sb strings.Builder
	sb.WriteString(bt)
	fmt.Fprintf(&sb, "   X black: %2d   O white: %2d\n",
		p.discs[board.Black], p.discs[board.White])
	if p.GameOver() {
		w := p.Winner()
		if w == board.Empty {
			sb.WriteString("   game over: draw\n")
		} else {
			fmt.Fprintf(&sb, "   game over: %v wins\n", w)
		}
	} else {
		fmt.Fprintf(&sb, "   %v to move\n", p.onTurn)
	}
	return sb.String()
}

func (p Position) String() string {
	return p.ToDisplayText()
}

// MovesString formats a move list in algebraic notation.
func MovesString(moves []board.Point) string {
	return strings.Join(lo.Map(moves, func(m board.Point, _ int) string {
		return m.String()
	}), " ")
}
