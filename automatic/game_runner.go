// Package automatic plays computer-vs-computer Othello games, for
// comparing bots and collecting statistics.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/bot"
	"github.com/domino14/othello/game"
)

// GameRunner plays one game at a time between two players. players[0]
// is black.
type GameRunner struct {
	players [2]bot.Player
	pos     game.Position
	turn    int
	gameID  int
	logchan chan string
}

// GameResult is the outcome of a finished game.
type GameResult struct {
	GameID int
	Black  string
	White  string
	Winner board.SpotState
	// Spread is black discs minus white discs.
	Spread int
	Turns  int
}

func NewGameRunner(black, white bot.Player, logchan chan string) *GameRunner {
	return &GameRunner{players: [2]bot.Player{black, white}, logchan: logchan}
}

func (r *GameRunner) playerFor(s board.SpotState) bot.Player {
	if s == board.White {
		return r.players[1]
	}
	return r.players[0]
}

func (r *GameRunner) StartGame(gameID int) {
	r.pos = game.StartingPosition()
	r.turn = 0
	r.gameID = gameID
}

func (r *GameRunner) Position() game.Position {
	return r.pos
}

// PlayTurn asks the player on turn for a move and plays it.
func (r *GameRunner) PlayTurn(ctx context.Context) error {
	onTurn := r.pos.OnTurn()
	p := r.playerFor(onTurn)
	m, err := p.ChooseMove(ctx, r.pos)
	if err != nil {
		return err
	}
	next, err := r.pos.PlayMove(m)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}
	r.pos = next
	r.turn++
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v\n",
			p.Name(),
			r.gameID,
			r.turn,
			onTurn,
			m,
			r.pos.DiscCount(board.Black),
			r.pos.DiscCount(board.White))
	}
	return nil
}

// PlayFullGame plays from the opening until neither side can move.
func (r *GameRunner) PlayFullGame(ctx context.Context, gameID int) (GameResult, error) {
	r.StartGame(gameID)
	for !r.pos.GameOver() {
		if err := r.PlayTurn(ctx); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{
		GameID: gameID,
		Black:  r.players[0].Name(),
		White:  r.players[1].Name(),
		Winner: r.pos.Winner(),
		Spread: r.pos.DiscCount(board.Black) - r.pos.DiscCount(board.White),
		Turns:  r.turn,
	}
	log.Debug().Int("game", gameID).
		Str("black", res.Black).Str("white", res.White).
		Int("spread", res.Spread).Int("turns", res.Turns).
		Msg("game-over")
	return res, nil
}
