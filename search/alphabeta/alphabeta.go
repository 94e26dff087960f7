// Package alphabeta picks a move using depth-limited minimax with
// alpha-beta pruning.
package alphabeta

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/equity"
	"github.com/domino14/othello/game"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

const (
	// Infinity is the initial search window. The first child at every node
	// is always taken, so scores at or beyond it still pick a move.
	Infinity = 10000000
	// DefaultMaxDepth is how many plies the bot looks ahead.
	DefaultMaxDepth = 5
)

var ErrNoMoves = errors.New("no legal moves to search")

// Solution is the root result. Index points into the move list that was
// passed to Solve.
type Solution struct {
	Score int
	Move  board.Point
	Index int
}

// Stats counts work done by the last Solve.
type Stats struct {
	Nodes   uint64
	Leaves  uint64
	Cutoffs uint64
}

// Solver implements the minimax + alphabeta algorithm. The maximizing
// player is whoever is on turn at the root; the evaluator always scores
// from that player's point of view, at every depth.
type Solver struct {
	evaluator      equity.Evaluator
	maxDepth       int
	threads        int
	disablePruning bool

	nodes   atomic.Uint64
	leaves  atomic.Uint64
	cutoffs atomic.Uint64
}

func NewSolver(ev equity.Evaluator, maxDepth int) *Solver {
	s := &Solver{evaluator: ev, threads: 1}
	s.SetMaxDepth(maxDepth)
	return s
}

func (s *Solver) SetMaxDepth(d int) {
	if d < 1 {
		d = 1
	}
	s.maxDepth = d
}

func (s *Solver) MaxDepth() int {
	return s.maxDepth
}

// SetThreads searches the root moves concurrently when n > 1.
func (s *Solver) SetThreads(n int) {
	if n < 1 {
		n = 1
	}
	s.threads = n
}

// SetPruningDisabled turns the search into plain minimax. It picks the
// same move, only slower; it exists for testing and comparison.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Solver) Stats() Stats {
	return Stats{
		Nodes:   s.nodes.Load(),
		Leaves:  s.leaves.Load(),
		Cutoffs: s.cutoffs.Load(),
	}
}

// Solve searches pos to the configured depth and returns the best of
// rootMoves for the player on turn. rootMoves is used as given and must
// be the legal move list for pos; it is never regenerated, so
// Solution.Index stays valid for the caller's slice. On ties the earliest
// move in the list wins.
func (s *Solver) Solve(ctx context.Context, pos game.Position, rootMoves []board.Point) (Solution, error) {
	if len(rootMoves) == 0 {
		return Solution{}, ErrNoMoves
	}
	s.nodes.Store(0)
	s.leaves.Store(0)
	s.cutoffs.Store(0)
	s.nodes.Add(1)
	tstart := time.Now()

	var score, idx int
	var err error
	if s.threads > 1 && len(rootMoves) > 1 {
		score, idx, err = s.parallelRoot(ctx, pos, rootMoves)
	} else {
		score, idx, err = s.branch(ctx, pos, rootMoves, s.maxDepth, -Infinity, Infinity, pos.OnTurn())
	}
	if err != nil {
		return Solution{}, err
	}
	log.Debug().
		Int("depth", s.maxDepth).
		Int("threads", s.threads).
		Bool("pruning", !s.disablePruning).
		Uint64("nodes", s.nodes.Load()).
		Uint64("leaves", s.leaves.Load()).
		Uint64("cutoffs", s.cutoffs.Load()).
		Int("score", score).
		Str("move", rootMoves[idx].String()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")

	return Solution{Score: score, Move: rootMoves[idx], Index: idx}, nil
}

func (s *Solver) alphabeta(ctx context.Context, pos game.Position, depth int,
	α, β int, maximizer board.SpotState) (int, int, error) {

	if err := ctx.Err(); err != nil {
		return 0, -1, err
	}
	s.nodes.Add(1)

	var moves []board.Point
	if depth > 0 {
		moves = pos.LegalMoves()
	}
	if len(moves) == 0 {
		// depth limit, or nobody can move. PlayMove already handed the
		// turn back if only the opponent was stuck.
		s.leaves.Add(1)
		return s.evaluator.Evaluate(pos, maximizer), -1, nil
	}
	return s.branch(ctx, pos, moves, depth, α, β, maximizer)
}

// branch scores each move and returns the best value with its index in
// moves. Whether it maximizes or minimizes depends on who is on turn in
// pos, so a forced pass keeps the same side choosing twice in a row.
func (s *Solver) branch(ctx context.Context, pos game.Position, moves []board.Point,
	depth int, α, β int, maximizer board.SpotState) (int, int, error) {

	bestIdx := -1
	if pos.OnTurn() == maximizer {
		value := -Infinity
		for i, m := range moves {
			child, err := pos.PlayMove(m)
			if err != nil {
				return α, -1, err
			}
			childValue, _, err := s.alphabeta(ctx, child, depth-1, α, β, maximizer)
			if err != nil {
				return α, -1, err
			}
			if bestIdx < 0 || childValue > value {
				value = childValue
				bestIdx = i
			}
			α = max(α, value)
			if α >= β && !s.disablePruning {
				s.cutoffs.Add(1)
				break // beta cut-off
			}
		}
		return value, bestIdx, nil
	}

	value := Infinity
	for i, m := range moves {
		child, err := pos.PlayMove(m)
		if err != nil {
			return β, -1, err
		}
		childValue, _, err := s.alphabeta(ctx, child, depth-1, α, β, maximizer)
		if err != nil {
			return β, -1, err
		}
		if bestIdx < 0 || childValue < value {
			value = childValue
			bestIdx = i
		}
		β = min(β, value)
		if β <= α && !s.disablePruning {
			s.cutoffs.Add(1)
			break // alpha cut-off
		}
	}
	return value, bestIdx, nil
}

// parallelRoot gives every root move a full window, so each child value
// is exact and the first strict maximum is the move the sequential search
// would have picked.
func (s *Solver) parallelRoot(ctx context.Context, pos game.Position, rootMoves []board.Point) (int, int, error) {
	maximizer := pos.OnTurn()
	values := make([]int, len(rootMoves))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i, m := range rootMoves {
		i, m := i, m
		g.Go(func() error {
			child, err := pos.PlayMove(m)
			if err != nil {
				return err
			}
			v, _, err := s.alphabeta(gctx, child, s.maxDepth-1, -Infinity, Infinity, maximizer)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, -1, err
	}

	best, bestIdx := -Infinity, -1
	for i, v := range values {
		if bestIdx < 0 || v > best {
			best = v
			bestIdx = i
		}
	}
	return best, bestIdx, nil
}
