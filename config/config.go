package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDepth       = "depth"
	ConfigThreads     = "threads"
	ConfigPrune       = "prune"
	ConfigEval        = "eval"
	ConfigWeightsPath = "weights-path"
	ConfigDebug       = "debug"
	ConfigGames       = "games"
	ConfigCPUProfile  = "cpu-profile"
)

const (
	EvalPositional = "positional"
	EvalDiscs      = "discs"
)

// Config wraps a viper instance. Values come from, in order of priority:
// command-line flags, OTHELLO_* environment variables, and defaults.
type Config struct {
	viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDepth, 5)
	v.SetDefault(ConfigThreads, 1)
	v.SetDefault(ConfigPrune, true)
	v.SetDefault(ConfigEval, EvalPositional)
	v.SetDefault(ConfigWeightsPath, "")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigGames, 100)
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig is a config with only the defaults set; tests use it.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

// Load parses args and the environment. Positional arguments left over
// after the flags are available from Args.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)
	c.SetEnvPrefix("othello")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	fs.Int(ConfigDepth, 5, "search depth in plies")
	fs.Int(ConfigThreads, 1, "search the root moves on this many goroutines")
	fs.Bool(ConfigPrune, true, "use alpha-beta pruning (false searches the full tree)")
	fs.String(ConfigEval, EvalPositional, "evaluator: positional or discs")
	fs.String(ConfigWeightsPath, "", "YAML file overriding the positional weights")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigGames, 100, "number of games for autoplay")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is what gets logged at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
