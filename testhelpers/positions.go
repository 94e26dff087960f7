// Package testhelpers builds positions for tests in other packages.
package testhelpers

import (
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

// PositionFromVs parses one of the sample boards and panics on error.
func PositionFromVs(vs board.VsWho, onTurn board.SpotState) game.Position {
	g, err := board.GridFromPlaintext(string(vs))
	if err != nil {
		panic(err)
	}
	pos, err := game.NewPosition(g, onTurn)
	if err != nil {
		panic(err)
	}
	return pos
}

// RandomPosition plays up to plies random legal moves from the opening.
// It stops early if the game ends.
func RandomPosition(plies int) game.Position {
	pos := game.StartingPosition()
	for i := 0; i < plies && !pos.GameOver(); i++ {
		moves := pos.LegalMoves()
		next, err := pos.PlayMove(moves[frand.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		pos = next
	}
	return pos
}

// RandomMidgame returns a random position that is still in play, with
// between minPlies and maxPlies moves made.
func RandomMidgame(minPlies, maxPlies int) game.Position {
	for {
		pos := RandomPosition(minPlies + frand.Intn(maxPlies-minPlies+1))
		if !pos.GameOver() {
			return pos
		}
	}
}
