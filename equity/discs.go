package equity

import (
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

// DiscEvaluator just counts discs. It is a lot weaker than the positional
// evaluator but handy as a baseline opponent.
type DiscEvaluator struct{}

func NewDiscEvaluator() *DiscEvaluator {
	return &DiscEvaluator{}
}

func (de *DiscEvaluator) Evaluate(pos game.Position, subject board.SpotState) int {
	if !subject.IsPlayer() {
		return 0
	}
	return pos.DiscCount(subject) - pos.DiscCount(subject.Opponent())
}
