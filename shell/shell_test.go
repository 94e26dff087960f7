package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/game"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /path/to/log.txt",
			&shellcmd{"autoplay", nil, CmdOptions{"file": {"/path/to/log.txt"}}},
			nil},
		{"autoplay stop",
			&shellcmd{"autoplay", []string{"stop"}, CmdOptions{}},
			nil},
		{"autoplay 20 -vs random -file foo.txt ",
			&shellcmd{"autoplay",
				[]string{"20"},
				CmdOptions{"vs": {"random"}, "file": {"foo.txt"}}},
			nil,
		},
		{`save "my games/turn.txt"`,
			&shellcmd{"save", []string{"my games/turn.txt"}, CmdOptions{}},
			nil},
		{"autoplay 20 -vs random -file",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController() (*ShellController, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDepth, 2)
	out := &bytes.Buffer{}
	sc := newController(cfg, out)
	sc.execPath = ".."
	return sc, out
}

func TestPlayAndUndo(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.Execute(sig, "play d3"))
	is.True(strings.Contains(out.String(), "black plays d3"))
	is.Equal(sc.pos.At(board.Point{Row: 2, Col: 3}), board.Black)
	is.Equal(sc.pos.OnTurn(), board.White)

	out.Reset()
	is.NoErr(sc.Execute(sig, "play a1"))
	is.True(strings.Contains(out.String(), "Error:"))
	is.Equal(sc.pos.OnTurn(), board.White)

	is.NoErr(sc.Execute(sig, "undo"))
	is.Equal(sc.pos, game.StartingPosition())
	out.Reset()
	is.NoErr(sc.Execute(sig, "undo"))
	is.True(strings.Contains(out.String(), "nothing to undo"))
}

func TestBotMove(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.Execute(sig, "best"))
	is.True(strings.Contains(out.String(), "best: "))
	is.Equal(sc.pos, game.StartingPosition())

	is.NoErr(sc.Execute(sig, "bot"))
	is.Equal(sc.pos.DiscsOnBoard(), 5)
	is.Equal(len(sc.history), 1)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.Execute(sig, "set depth 3"))
	is.Equal(sc.bot.Solver().MaxDepth(), 3)
	is.Equal(sc.bot.Name(), "positional-3")

	out.Reset()
	is.NoErr(sc.Execute(sig, "set eval nonsense"))
	is.True(strings.Contains(out.String(), "unknown evaluator"))
	// the bad value is rolled back
	is.Equal(sc.config.GetString(config.ConfigEval), config.EvalPositional)

	out.Reset()
	is.NoErr(sc.Execute(sig, "set colour blue"))
	is.True(strings.Contains(out.String(), "unknown setting"))
}

func TestSaveAndLoad(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	sig := make(chan os.Signal, 1)
	path := filepath.Join(t.TempDir(), "turn.txt")

	is.NoErr(sc.Execute(sig, "play f5"))
	saved := sc.pos
	is.NoErr(sc.Execute(sig, "save "+path))
	is.NoErr(sc.Execute(sig, "new"))
	is.Equal(sc.pos, game.StartingPosition())
	is.NoErr(sc.Execute(sig, "load "+path))
	is.Equal(sc.pos, saved)
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.Execute(sig, "help"))
	is.True(strings.Contains(out.String(), "autoplay [n]"))
	out.Reset()
	is.NoErr(sc.Execute(sig, "help nosuchtopic"))
	is.True(strings.Contains(out.String(), "no help text"))
}

func TestAutoplay(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sc.config.Set(config.ConfigDepth, 1)
	sig := make(chan os.Signal, 1)
	logPath := filepath.Join(t.TempDir(), "games.csv")

	is.NoErr(sc.Execute(sig, "autoplay 4 -vs random -file "+logPath))
	sc.autoplayMu.Lock()
	done := sc.autoplayDone
	sc.autoplayMu.Unlock()
	is.True(done != nil)
	<-done

	is.True(strings.Contains(out.String(), "4 games"))
	log, err := os.ReadFile(logPath)
	is.NoErr(err)
	is.True(strings.HasPrefix(string(log), "player,gameID,turn,color,move,black,white\n"))
	is.True(!sc.autoplaying())
}

func TestQuit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	sig := make(chan os.Signal, 1)
	is.Equal(sc.Execute(sig, "exit"), errQuit)
	is.Equal(len(sig), 1)
}
