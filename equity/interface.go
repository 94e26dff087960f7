package equity

import (
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

// Evaluator scores a position for a fixed subject player. Higher is
// better for the subject. Implementations must be pure functions of their
// arguments: the search calls them at every leaf with the same subject,
// the player who was on turn at the root.
type Evaluator interface {
	Evaluate(pos game.Position, subject board.SpotState) int
}

// sign is +1 for the subject's discs, -1 for the opponent's and 0 for
// empty cells.
func sign(s, subject board.SpotState) int {
	switch s {
	case subject:
		return 1
	case subject.Opponent():
		return -1
	}
	return 0
}
