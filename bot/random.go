package bot

import (
	"context"

	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search/alphabeta"
)

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct{}

func (r *RandomPlayer) Name() string {
	return "random"
}

func (r *RandomPlayer) ChooseMove(ctx context.Context, pos game.Position) (board.Point, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return board.Point{}, alphabeta.ErrNoMoves
	}
	return moves[frand.Intn(len(moves))], nil
}
