package equity

import (
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

const (
	DefaultCornerWeight          = 30
	DefaultCornerAdjacencyWeight = -15
)

// DefaultWeights is the positional weight table. Corners and edges are
// good; the cells diagonally next to a corner are bad.
var DefaultWeights = [board.Dim][board.Dim]int{
	{20, -3, 11, 8, 8, 11, -3, 20},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{20, -3, 11, 8, 8, 11, -3, 20},
}

// PositionalEvaluator adds three terms:
//
//   - the weight table, counted + for subject discs and - for opponent discs
//   - CornerWeight * (subject corners - opponent corners)
//   - CornerAdjacencyWeight * (subject - opponent discs next to corners
//     that are still empty)
type PositionalEvaluator struct {
	Weights               [board.Dim][board.Dim]int
	CornerWeight          int
	CornerAdjacencyWeight int
}

func NewPositionalEvaluator() *PositionalEvaluator {
	return &PositionalEvaluator{
		Weights:               DefaultWeights,
		CornerWeight:          DefaultCornerWeight,
		CornerAdjacencyWeight: DefaultCornerAdjacencyWeight,
	}
}

func (pe *PositionalEvaluator) Evaluate(pos game.Position, subject board.SpotState) int {
	if !subject.IsPlayer() {
		return 0
	}
	return pe.weightTerm(pos, subject) +
		pe.CornerWeight*cornerControl(pos, subject) +
		pe.CornerAdjacencyWeight*cornerAdjacency(pos, subject)
}

func (pe *PositionalEvaluator) weightTerm(pos game.Position, subject board.SpotState) int {
	g := pos.Grid()
	total := 0
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			total += sign(g[r][c], subject) * pe.Weights[r][c]
		}
	}
	return total
}

func cornerControl(pos game.Position, subject board.SpotState) int {
	n := 0
	for _, c := range board.Corners {
		n += sign(pos.At(c), subject)
	}
	return n
}

// cornerAdjacency only looks at empty corners; once a corner is taken
// its neighbours stop being a liability.
func cornerAdjacency(pos game.Position, subject board.SpotState) int {
	n := 0
	for i, c := range board.Corners {
		if pos.At(c) != board.Empty {
			continue
		}
		for _, nb := range board.CornerNeighbors[i] {
			n += sign(pos.At(nb), subject)
		}
	}
	return n
}
