package automatic

// Data collection for automatic games. Allow computer vs computer games, etc.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/bot"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// PlayerFactory builds a fresh player. Each game gets its own players so
// that concurrent games share nothing.
type PlayerFactory func() (bot.Player, error)

// Summary is seen from the first player's side.
type Summary struct {
	Player1 string
	Player2 string
	Games   int
	P1Wins  int
	P2Wins  int
	Draws   int
	// disc spread, player 1 minus player 2
	SpreadMean  float64
	SpreadStdev float64
	Results     []GameResult
}

func (s *Summary) String() string {
	return fmt.Sprintf("%s vs %s: %d games, %d-%d-%d (W-L-D), spread %.2f ± %.2f",
		s.Player1, s.Player2, s.Games, s.P1Wins, s.P2Wins, s.Draws,
		s.SpreadMean, s.SpreadStdev)
}

// p1Spread flips the sign for games where player 1 had white.
func p1Spread(r GameResult) int {
	if r.GameID%2 == 1 {
		return -r.Spread
	}
	return r.Spread
}

func summarize(results []GameResult) *Summary {
	s := &Summary{Games: len(results), Results: results}
	if len(results) == 0 {
		return s
	}
	first := results[0]
	s.Player1, s.Player2 = first.Black, first.White
	if first.GameID%2 == 1 {
		s.Player1, s.Player2 = first.White, first.Black
	}
	for _, r := range results {
		switch sp := p1Spread(r); {
		case sp > 0:
			s.P1Wins++
		case sp < 0:
			s.P2Wins++
		default:
			s.Draws++
		}
	}
	spreads := lo.Map(results, func(r GameResult, _ int) float64 {
		return float64(p1Spread(r))
	})
	s.SpreadMean, s.SpreadStdev = stat.MeanStdDev(spreads, nil)
	if len(spreads) == 1 {
		s.SpreadStdev = 0
	}
	return s
}

// PlayGames plays numGames games between two players on up to threads
// goroutines. Colors alternate: in even-numbered games player 1 is
// black. If logw is not nil, one CSV line per move is written to it.
func PlayGames(ctx context.Context, p1, p2 PlayerFactory, numGames, threads int,
	logw io.Writer) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)
	CVCCounter.Set(0)
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	var logChan chan string
	var logWG sync.WaitGroup
	if logw != nil {
		logChan = make(chan string, 100)
		logWG.Add(1)
		go func() {
			defer logWG.Done()
			io.WriteString(logw, "player,gameID,turn,color,move,black,white\n")
			for msg := range logChan {
				io.WriteString(logw, msg)
			}
		}()
	}

	results := make([]GameResult, numGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))
	launched := 0
	for i := 0; i < numGames; i++ {
		if gctx.Err() != nil {
			log.Info().Msg("Got stop signal, exiting soon...")
			break
		}
		i := i
		g.Go(func() error {
			a, err := p1()
			if err != nil {
				return err
			}
			b, err := p2()
			if err != nil {
				return err
			}
			if i%2 == 1 {
				a, b = b, a
			}
			r := NewGameRunner(a, b, logChan)
			res, err := r.PlayFullGame(gctx, i)
			if err != nil {
				return err
			}
			results[i] = res
			CVCCounter.Add(1)
			return nil
		})
		launched++
	}
	err := g.Wait()
	if logChan != nil {
		close(logChan)
		logWG.Wait()
	}
	if err != nil {
		return nil, err
	}
	s := summarize(results[:launched])
	log.Info().Int("games", s.Games).
		Int("p1-wins", s.P1Wins).Int("p2-wins", s.P2Wins).Int("draws", s.Draws).
		Float64("spread-mean", s.SpreadMean).
		Msg("all-games-finished")
	return s, nil
}

// Winner of a single result in terms of player names; empty on a draw.
func (r GameResult) WinnerName() string {
	switch r.Winner {
	case board.Black:
		return r.Black
	case board.White:
		return r.White
	}
	return ""
}
