package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/bot"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errAutoplaying       = errors.New("autoplay is running; do `autoplay stop` first")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	pos     game.Position
	history []game.Position
	bot     *bot.Bot

	autoplayMu     sync.Mutex
	autoplayCancel context.CancelFunc
	autoplayDone   chan struct{}

	execPath string
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up readline and a game at the opening.
func NewShellController(cfg *config.Config, execPath string) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mothello>\033[0m ",
		HistoryFile:     "/tmp/othello_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stderr())
	sc.l = l
	sc.execPath = execPath
	return sc
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{config: cfg, out: out}
	sc.pos = game.StartingPosition()
	if err := sc.rebuildBot(); err != nil {
		log.Err(err).Msg("could not create bot; falling back to defaults")
		sc.config = config.DefaultConfig()
		sc.rebuildBot()
	}
	return sc
}

func (sc *ShellController) rebuildBot() error {
	b, err := bot.NewBot(sc.config)
	if err != nil {
		return err
	}
	sc.bot = b
	return nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a command line into the command, its positional
// arguments, and -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		f := fields[idx]
		if strings.HasPrefix(f, "-") && len(f) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := f[1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, f)
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves":
		return sc.moves(cmd)
	case "play", "add":
		return sc.play(cmd)
	case "best":
		return sc.best(cmd)
	case "bot":
		return sc.botPlay(cmd)
	case "undo", "b":
		return sc.undo(cmd)
	case "set":
		return sc.set(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	}
	return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
}

// Execute runs a single command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) error {
	line = strings.TrimSpace(line)
	if line == "bye" || line == "exit" {
		sig <- syscall.SIGINT
		return errQuit
	}
	cmd, err := extractFields(line)
	if err != nil {
		if !errors.Is(err, errNoData) {
			sc.showError(err)
		}
		return nil
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.Execute(sig, line); err != nil {
			log.Debug().Err(err).Msg("leaving-loop")
			break
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}

// Cleanup stops a running autoplay and waits for it.
func (sc *ShellController) Cleanup() {
	sc.autoplayMu.Lock()
	cancel, done := sc.autoplayCancel, sc.autoplayDone
	sc.autoplayMu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

// WaitAutoplay blocks until a running autoplay finishes on its own.
func (sc *ShellController) WaitAutoplay() {
	sc.autoplayMu.Lock()
	done := sc.autoplayDone
	sc.autoplayMu.Unlock()
	if done != nil {
		<-done
	}
}
