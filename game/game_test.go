package game

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func positionFromVs(t *testing.T, vs board.VsWho, onTurn board.SpotState) Position {
	t.Helper()
	g, err := board.GridFromPlaintext(string(vs))
	if err != nil {
		t.Fatal(err)
	}
	pos, err := NewPosition(g, onTurn)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func TestOpeningMoves(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition()
	assert.Equal(t, []board.Point{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, pos.LegalMoves())
	is.Equal(MovesString(pos.LegalMoves()), "d3 c4 f5 e6")

	white, err := pos.WithOnTurn(board.White)
	is.NoErr(err)
	assert.Equal(t, []board.Point{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}, white.LegalMoves())
}

func TestStartingPositionMatchesGrid(t *testing.T) {
	is := is.New(t)
	pos, err := NewPosition(board.StartingGrid(), board.Black)
	is.NoErr(err)
	is.Equal(pos, StartingPosition())
}

func TestPlayMoveFlips(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition()
	next, err := pos.PlayMove(board.Point{Row: 2, Col: 3})
	is.NoErr(err)

	is.Equal(next.At(board.Point{Row: 2, Col: 3}), board.Black)
	is.Equal(next.At(board.Point{Row: 3, Col: 3}), board.Black)
	is.Equal(next.DiscCount(board.Black), 4)
	is.Equal(next.DiscCount(board.White), 1)
	is.Equal(next.DiscCount(board.Empty), 59)
	is.Equal(next.OnTurn(), board.White)

	// the receiver is untouched
	is.Equal(pos, StartingPosition())
}

func TestPlayMoveIllegal(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition()
	for _, pt := range []board.Point{{Row: 0, Col: 0}, {Row: 3, Col: 3}, {Row: 2, Col: 4}, {Row: -1, Col: 3}, {Row: 8, Col: 8}} {
		_, err := pos.PlayMove(pt)
		is.True(errors.Is(err, ErrIllegalMove))
	}
}

func TestIsLegalOffBoard(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition()
	is.True(!pos.IsLegal(board.Point{Row: -1, Col: 0}))
	is.True(!pos.IsLegal(board.Point{Row: 0, Col: 8}))
}

func TestForcedPass(t *testing.T) {
	is := is.New(t)
	pos := positionFromVs(t, board.ForcedPass, board.Black)
	assert.Equal(t, []board.Point{{Row: 0, Col: 2}, {Row: 7, Col: 5}}, pos.LegalMoves())

	next, err := pos.PlayMove(board.Point{Row: 0, Col: 2})
	is.NoErr(err)
	// white has nothing to bracket, so black keeps the turn
	is.Equal(next.OnTurn(), board.Black)
	is.True(!next.GameOver())
	assert.Equal(t, []board.Point{{Row: 7, Col: 5}}, next.LegalMoves())

	final, err := next.PlayMove(board.Point{Row: 7, Col: 5})
	is.NoErr(err)
	is.True(final.GameOver())
	is.Equal(len(final.LegalMoves()), 0)
	is.Equal(final.Winner(), board.Black)
	is.Equal(final.DiscCount(board.Black), 6)
}

func TestLoneCaptureEndsGame(t *testing.T) {
	is := is.New(t)
	pos := positionFromVs(t, board.LoneCapture, board.Black)
	assert.Equal(t, []board.Point{{Row: 0, Col: 2}}, pos.LegalMoves())
	next, err := pos.PlayMove(board.Point{Row: 0, Col: 2})
	is.NoErr(err)
	is.True(next.GameOver())
	is.Equal(next.DiscCount(board.White), 0)
}

func TestMalformedPositions(t *testing.T) {
	is := is.New(t)
	g := board.StartingGrid()

	_, err := NewPosition(g, board.Empty)
	is.True(errors.Is(err, ErrMalformedPosition))

	_, err = NewPositionWithCounts(g, [3]int{60, 3, 1}, board.Black)
	is.True(errors.Is(err, ErrMalformedPosition))

	_, err = NewPositionWithCounts(g, [3]int{59, 2, 2}, board.Black)
	is.True(errors.Is(err, ErrMalformedPosition))

	bad := g
	bad[0][0] = board.SpotState(7)
	_, err = NewPosition(bad, board.Black)
	is.True(errors.Is(err, ErrMalformedPosition))

	_, err = StartingPosition().WithOnTurn(board.SpotState(3))
	is.True(errors.Is(err, ErrMalformedPosition))

	_, err = NewPositionWithCounts(g, [3]int{60, 2, 2}, board.White)
	is.NoErr(err)
}

func TestCheckMoveList(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition()
	is.NoErr(pos.CheckMoveList(pos.LegalMoves()))
	is.NoErr(pos.CheckMoveList(nil))

	err := pos.CheckMoveList([]board.Point{{Row: 2, Col: 3}, {Row: 0, Col: 0}})
	is.True(errors.Is(err, ErrIllegalMove))

	err = pos.CheckMoveList([]board.Point{{Row: 2, Col: 3}, {Row: 2, Col: 3}})
	is.True(errors.Is(err, ErrIllegalMove))
}

// Random playouts: the counts always match the grid and every move adds
// exactly one disc.
func TestRandomPlayoutInvariants(t *testing.T) {
	is := is.New(t)
	for game := 0; game < 50; game++ {
		pos := StartingPosition()
		for !pos.GameOver() {
			moves := pos.LegalMoves()
			is.True(len(moves) > 0)
			before := pos.DiscsOnBoard()
			next, err := pos.PlayMove(moves[frand.Intn(len(moves))])
			is.NoErr(err)

			g := next.Grid()
			is.Equal(g.Tally(), next.DiscCounts())
			is.Equal(next.DiscsOnBoard(), before+1)
			is.True(next.OnTurn().IsPlayer())
			if next.OnTurn() == pos.OnTurn() {
				// a pass happened: the other side must have been stuck
				opp, err := next.WithOnTurn(next.OnTurn().Opponent())
				is.NoErr(err)
				is.True(!opp.HasLegalMove())
			}
			pos = next
		}
		is.Equal(len(pos.LegalMoves()), 0)
	}
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	board.ColorSupport = false
	txt := StartingPosition().ToDisplayText()
	is.True(len(txt) > 0)
	g, err := board.GridFromPlaintext(txt)
	is.NoErr(err)
	start := board.StartingGrid()
	is.True(g.Equals(&start))
}

func BenchmarkLegalMoves(b *testing.B) {
	pos := StartingPosition()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves()
	}
}
