// othello-bot is called once per turn by a game controller. It reads the
// position and the legal moves from <input>, and writes the chosen move
// to <output>.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/bot"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/gamefile"
)

var errUsage = errors.New("usage: othello-bot [flags] <input> <output>")

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

// run plays one turn. An input with no legal moves writes nothing.
func run(ctx context.Context, cfg *config.Config, input, output string) error {
	pos, moves, err := gamefile.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	if len(moves) == 0 {
		log.Info().Str("input", input).Msg("no legal moves; nothing to write")
		return nil
	}
	b, err := bot.NewBot(cfg)
	if err != nil {
		return err
	}
	sol, err := b.BestMove(ctx, pos, moves)
	if err != nil {
		return err
	}
	log.Debug().Str("bot", b.Name()).Str("move", sol.Move.String()).
		Int("score", sol.Score).Msg("chose-move")
	return gamefile.WriteFile(output, sol.Move)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	args := cfg.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, errUsage)
		os.Exit(2)
	}

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args[0], args[1]); err != nil {
		pprof.StopCPUProfile()
		log.Fatal().Err(err).Msg("othello-bot failed")
	}
}
