package bot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/equity"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search/alphabeta"
)

// Player is anything that can pick a move for the player on turn.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, pos game.Position) (board.Point, error)
}

// Bot plays the move the alpha-beta solver recommends.
type Bot struct {
	config *config.Config
	solver *alphabeta.Solver
	name   string
}

// NewEvaluator picks the evaluator named by the eval config key.
func NewEvaluator(cfg *config.Config) (equity.Evaluator, error) {
	switch cfg.GetString(config.ConfigEval) {
	case config.EvalPositional, "":
		if path := cfg.GetString(config.ConfigWeightsPath); path != "" {
			return equity.LoadPositionalEvaluator(path)
		}
		return equity.NewPositionalEvaluator(), nil
	case config.EvalDiscs:
		return equity.NewDiscEvaluator(), nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", cfg.GetString(config.ConfigEval))
}

func NewBot(cfg *config.Config) (*Bot, error) {
	ev, err := NewEvaluator(cfg)
	if err != nil {
		return nil, err
	}
	s := alphabeta.NewSolver(ev, cfg.GetInt(config.ConfigDepth))
	s.SetThreads(cfg.GetInt(config.ConfigThreads))
	s.SetPruningDisabled(!cfg.GetBool(config.ConfigPrune))

	name := fmt.Sprintf("%s-%d", cfg.GetString(config.ConfigEval), s.MaxDepth())
	log.Debug().Str("bot", name).
		Int("threads", cfg.GetInt(config.ConfigThreads)).
		Bool("prune", cfg.GetBool(config.ConfigPrune)).
		Msg("new-bot")
	return &Bot{config: cfg, solver: s, name: name}, nil
}

func (b *Bot) Name() string {
	return b.name
}

func (b *Bot) Solver() *alphabeta.Solver {
	return b.solver
}

// BestMove searches with an externally supplied legal-move list. The
// list is checked against pos before searching.
func (b *Bot) BestMove(ctx context.Context, pos game.Position, moves []board.Point) (alphabeta.Solution, error) {
	if len(moves) == 0 {
		return alphabeta.Solution{}, alphabeta.ErrNoMoves
	}
	if err := pos.CheckMoveList(moves); err != nil {
		return alphabeta.Solution{}, err
	}
	return b.solver.Solve(ctx, pos, moves)
}

func (b *Bot) ChooseMove(ctx context.Context, pos game.Position) (board.Point, error) {
	sol, err := b.solver.Solve(ctx, pos, pos.LegalMoves())
	if err != nil {
		return board.Point{}, err
	}
	return sol.Move, nil
}
