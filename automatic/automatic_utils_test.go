package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/bot"
	"github.com/domino14/othello/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func botFactory(depth int) PlayerFactory {
	return func() (bot.Player, error) {
		cfg := config.DefaultConfig()
		cfg.Set(config.ConfigDepth, depth)
		return bot.NewBot(cfg)
	}
}

func randomFactory() (bot.Player, error) {
	return &bot.RandomPlayer{}, nil
}

func TestPlayFullGame(t *testing.T) {
	is := is.New(t)
	a, err := botFactory(1)()
	is.NoErr(err)
	r := NewGameRunner(a, &bot.RandomPlayer{}, nil)
	res, err := r.PlayFullGame(context.Background(), 0)
	is.NoErr(err)
	is.True(r.Position().GameOver())
	is.Equal(res.Black, "positional-1")
	is.Equal(res.White, "random")
	pos := r.Position()
	is.Equal(res.Spread, pos.DiscCount(board.Black)-pos.DiscCount(board.White))
	// every turn places one disc on top of the four we start with
	is.Equal(res.Turns, pos.DiscsOnBoard()-4)
}

func TestPlayGames(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	s, err := PlayGames(context.Background(), botFactory(2), randomFactory, 6, 3, &buf)
	is.NoErr(err)
	is.Equal(s.Games, 6)
	is.Equal(s.P1Wins+s.P2Wins+s.Draws, 6)
	is.Equal(s.Player1, "positional-2")
	is.Equal(s.Player2, "random")
	is.Equal(CVCCounter.Value(), int64(6))
	is.Equal(IsPlaying.Value(), int64(0))

	// colors alternate
	is.Equal(s.Results[0].Black, "positional-2")
	is.Equal(s.Results[1].Black, "random")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(lines[0], "player,gameID,turn,color,move,black,white")
	turns := 0
	for _, r := range s.Results {
		turns += r.Turns
	}
	is.Equal(len(lines)-1, turns)
	is.True(strings.Contains(s.String(), "6 games"))
}

func TestPlayGamesFactoryError(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	_, err := PlayGames(context.Background(), randomFactory,
		func() (bot.Player, error) { return nil, boom }, 2, 1, nil)
	is.True(errors.Is(err, boom))
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	s := summarize([]GameResult{
		{GameID: 0, Black: "a", White: "b", Winner: board.Black, Spread: 10},
		{GameID: 1, Black: "b", White: "a", Winner: board.Black, Spread: 4},
		{GameID: 2, Black: "a", White: "b", Spread: 0},
	})
	is.Equal(s.Player1, "a")
	is.Equal(s.P1Wins, 1)
	is.Equal(s.P2Wins, 1)
	is.Equal(s.Draws, 1)
	is.Equal(s.SpreadMean, 2.0)
	is.Equal(s.Results[1].WinnerName(), "b")
	is.Equal(s.Results[2].WinnerName(), "")
}
