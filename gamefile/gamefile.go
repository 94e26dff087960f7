// Package gamefile reads and writes the plain-text files the game
// controller exchanges with the bot each turn.
//
// The input holds whitespace-separated integers: the player to move
// (1 black, 2 white), 64 cells in row-major order (0 empty, 1 black,
// 2 white), the number of legal moves n, then n "row col" pairs. The
// output is a single "row col" line.
package gamefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

var ErrMalformedInput = errors.New("malformed input")

type intReader struct {
	sc    *bufio.Scanner
	count int
}

func newIntReader(r io.Reader) *intReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &intReader{sc: sc}
}

func (ir *intReader) next(field string) (int, error) {
	if !ir.sc.Scan() {
		if err := ir.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: missing %s (after %d values)", ErrMalformedInput, field, ir.count)
	}
	ir.count++
	v, err := strconv.Atoi(ir.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s is %q", ErrMalformedInput, field, ir.sc.Text())
	}
	return v, nil
}

// Read parses a turn file. The returned moves are checked against the
// position; a move that is not legal there is an error.
func Read(r io.Reader) (game.Position, []board.Point, error) {
	ir := newIntReader(r)
	player, err := ir.next("player")
	if err != nil {
		return game.Position{}, nil, err
	}
	var g board.Grid
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			field := fmt.Sprintf("cell %d,%d", row, col)
			v, err := ir.next(field)
			if err != nil {
				return game.Position{}, nil, err
			}
			if v < 0 || v > int(board.White) {
				return game.Position{}, nil, fmt.Errorf("%w: %s is %d", ErrMalformedInput, field, v)
			}
			g[row][col] = board.SpotState(v)
		}
	}
	if player < int(board.Black) || player > int(board.White) {
		return game.Position{}, nil, fmt.Errorf("%w: player is %d", ErrMalformedInput, player)
	}
	pos, err := game.NewPosition(g, board.SpotState(player))
	if err != nil {
		return game.Position{}, nil, err
	}

	n, err := ir.next("move count")
	if err != nil {
		return game.Position{}, nil, err
	}
	if n < 0 || n > board.Dim*board.Dim {
		return game.Position{}, nil, fmt.Errorf("%w: move count is %d", ErrMalformedInput, n)
	}
	moves := make([]board.Point, 0, n)
	for i := 0; i < n; i++ {
		row, err := ir.next(fmt.Sprintf("move %d row", i))
		if err != nil {
			return game.Position{}, nil, err
		}
		col, err := ir.next(fmt.Sprintf("move %d col", i))
		if err != nil {
			return game.Position{}, nil, err
		}
		moves = append(moves, board.Point{Row: row, Col: col})
	}
	if err := pos.CheckMoveList(moves); err != nil {
		return game.Position{}, nil, err
	}
	log.Debug().Int("player", player).Int("moves", n).Msg("read-turn-file")
	return pos, moves, nil
}

// ReadFile is Read on a named file.
func ReadFile(path string) (game.Position, []board.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.Position{}, nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write emits the chosen move as "row col".
func Write(w io.Writer, p board.Point) error {
	_, err := fmt.Fprintf(w, "%d %d\n", p.Row, p.Col)
	return err
}

// WriteFile creates (or truncates) path and writes the move to it.
func WriteFile(path string, p board.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode is the inverse of Read, used by the shell to save a turn file.
func Encode(w io.Writer, pos game.Position, moves []board.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", pos.OnTurn())
	g := pos.Grid()
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", g[row][col])
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%d\n", len(moves))
	for _, m := range moves {
		fmt.Fprintf(bw, "%d %d\n", m.Row, m.Col)
	}
	return bw.Flush()
}
