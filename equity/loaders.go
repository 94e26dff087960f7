package equity

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/othello/board"
)

var ErrBadWeights = errors.New("bad evaluator weights")

// LoadPositionalEvaluator reads a YAML weights file. Keys that are left
// out keep their defaults, e.g.
//
//	corner_weight: 40
//	weights:
//	  - [20, -3, 11, 8, 8, 11, -3, 20]
//	  ...
func LoadPositionalEvaluator(path string) (*PositionalEvaluator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pe, err := ReadPositionalEvaluator(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).
		Int("corner-weight", pe.CornerWeight).
		Int("corner-adjacency-weight", pe.CornerAdjacencyWeight).
		Msg("loaded-positional-weights")
	return pe, nil
}

// ReadPositionalEvaluator decodes evaluator parameters from YAML.
func ReadPositionalEvaluator(r io.Reader) (*PositionalEvaluator, error) {
	var raw struct {
		Weights               [][]int `yaml:"weights"`
		CornerWeight          *int    `yaml:"corner_weight"`
		CornerAdjacencyWeight *int    `yaml:"corner_adjacency_weight"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	pe := NewPositionalEvaluator()
	if raw.Weights != nil {
		if len(raw.Weights) != board.Dim {
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadWeights, len(raw.Weights), board.Dim)
		}
		for r, row := range raw.Weights {
			if len(row) != board.Dim {
				return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
					ErrBadWeights, r, len(row), board.Dim)
			}
			copy(pe.Weights[r][:], row)
		}
	}
	if raw.CornerWeight != nil {
		pe.CornerWeight = *raw.CornerWeight
	}
	if raw.CornerAdjacencyWeight != nil {
		pe.CornerAdjacencyWeight = *raw.CornerAdjacencyWeight
	}
	return pe, nil
}
