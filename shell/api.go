package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/automatic"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/bot"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/gamefile"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

// settable are the config keys the shell lets you change.
var settable = []string{
	config.ConfigDepth,
	config.ConfigThreads,
	config.ConfigPrune,
	config.ConfigEval,
	config.ConfigWeightsPath,
	config.ConfigGames,
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb, "standard", sc.execPath)
	} else {
		usageTopic(&sb, cmd.args[0], sc.execPath)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) setPosition(pos game.Position, keepHistory bool) {
	if keepHistory {
		sc.history = append(sc.history, sc.pos)
	} else {
		sc.history = nil
	}
	sc.pos = pos
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.setPosition(game.StartingPosition(), false)
	return msg(sc.pos.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.pos.ToDisplayText()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	moves := sc.pos.LegalMoves()
	if len(moves) == 0 {
		return msg("no legal moves"), nil
	}
	return msg(fmt.Sprintf("%d moves: %s", len(moves), game.MovesString(moves))), nil
}

func (sc *ShellController) playAndShow(pt board.Point) (*Response, error) {
	mover := sc.pos.OnTurn()
	next, err := sc.pos.PlayMove(pt)
	if err != nil {
		return nil, err
	}
	sc.setPosition(next, true)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s plays %s\n", mover, pt)
	sb.WriteString(sc.pos.ToDisplayText())
	if !sc.pos.GameOver() && sc.pos.OnTurn() == mover {
		fmt.Fprintf(&sb, "%s has no moves and must pass.", mover.Opponent())
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <coordinate>, e.g. play d3")
	}
	pt, err := board.PointFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return sc.playAndShow(pt)
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	moves := sc.pos.LegalMoves()
	sol, err := sc.bot.BestMove(context.Background(), sc.pos, moves)
	if err != nil {
		return nil, err
	}
	st := sc.bot.Solver().Stats()
	return msg(fmt.Sprintf("best: %s (score %d, index %d of %d); %d nodes, %d leaves, %d cutoffs",
		sol.Move, sol.Score, sol.Index, len(moves), st.Nodes, st.Leaves, st.Cutoffs)), nil
}

func (sc *ShellController) botPlay(cmd *shellcmd) (*Response, error) {
	pt, err := sc.bot.ChooseMove(context.Background(), sc.pos)
	if err != nil {
		return nil, err
	}
	return sc.playAndShow(pt)
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if len(sc.history) == 0 {
		return nil, errors.New("nothing to undo")
	}
	sc.pos = sc.history[len(sc.history)-1]
	sc.history = sc.history[:len(sc.history)-1]
	return msg(sc.pos.ToDisplayText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		keys := append([]string(nil), settable...)
		sort.Strings(keys)
		var sb strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&sb, "%-14s %v\n", k, sc.config.Get(k))
		}
		return msg(strings.TrimSuffix(sb.String(), "\n")), nil
	}
	key := cmd.args[0]
	known := false
	for _, k := range settable {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown setting %q", key)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, sc.config.Get(key))), nil
	}
	if sc.autoplaying() {
		return nil, errAutoplaying
	}
	old := sc.config.Get(key)
	sc.config.Set(key, cmd.args[1])
	if err := sc.rebuildBot(); err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	return msg("set " + key + " to " + cmd.args[1] + "; bot is now " + sc.bot.Name()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <turnfile>")
	}
	pos, moves, err := gamefile.ReadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setPosition(pos, false)
	return msg(fmt.Sprintf("%s\n%d moves: %s", pos.ToDisplayText(), len(moves),
		game.MovesString(moves))), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <turnfile>")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := gamefile.Encode(f, sc.pos, sc.pos.LegalMoves()); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return msg("saved to " + cmd.args[0]), nil
}

func (sc *ShellController) autoplaying() bool {
	sc.autoplayMu.Lock()
	defer sc.autoplayMu.Unlock()
	return sc.autoplayCancel != nil
}

// opponentFactory builds the second player for autoplay.
func (sc *ShellController) opponentFactory(vs string) (automatic.PlayerFactory, error) {
	switch vs {
	case "", "bot":
		return func() (bot.Player, error) { return bot.NewBot(sc.config) }, nil
	case "random":
		return func() (bot.Player, error) { return &bot.RandomPlayer{}, nil }, nil
	}
	return nil, fmt.Errorf("unknown opponent %q; use bot or random", vs)
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		sc.autoplayMu.Lock()
		cancel := sc.autoplayCancel
		sc.autoplayMu.Unlock()
		if cancel == nil {
			return nil, errors.New("automatic game runner is not running")
		}
		cancel()
		return msg("stopping automatic games..."), nil
	}
	if sc.autoplaying() {
		return nil, errAutoplaying
	}

	numGames := sc.config.GetInt(config.ConfigGames)
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad number of games %q", cmd.args[0])
		}
		numGames = n
	}
	threads, err := cmd.options.IntDefault("threads", 1)
	if err != nil {
		return nil, err
	}
	p2, err := sc.opponentFactory(cmd.options.String("vs"))
	if err != nil {
		return nil, err
	}
	p1 := func() (bot.Player, error) { return bot.NewBot(sc.config) }

	var logf *os.File
	if path := cmd.options.String("file"); path != "" {
		logf, err = os.Create(path)
		if err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayMu.Lock()
	sc.autoplayCancel, sc.autoplayDone = cancel, done
	sc.autoplayMu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			sc.autoplayMu.Lock()
			sc.autoplayCancel, sc.autoplayDone = nil, nil
			sc.autoplayMu.Unlock()
			cancel()
		}()
		var summary *automatic.Summary
		var err error
		if logf != nil {
			summary, err = automatic.PlayGames(ctx, p1, p2, numGames, threads, logf)
			logf.Close()
		} else {
			summary, err = automatic.PlayGames(ctx, p1, p2, numGames, threads, nil)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Err(err).Msg("autoplay-error")
			return
		}
		if summary != nil {
			sc.showMessage(summary.String())
		}
	}()
	return msg(fmt.Sprintf("started %d automatic games", numGames)), nil
}
