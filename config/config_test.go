package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaultConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigDepth), 5)
	is.Equal(cfg.GetInt(ConfigThreads), 1)
	is.True(cfg.GetBool(ConfigPrune))
	is.Equal(cfg.GetString(ConfigEval), EvalPositional)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--depth", "3", "--eval", "discs", "in.txt", "out.txt"}))
	is.Equal(cfg.GetInt(ConfigDepth), 3)
	is.Equal(cfg.GetString(ConfigEval), EvalDiscs)
	is.Equal(cfg.Args(), []string{"in.txt", "out.txt"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("OTHELLO_THREADS", "4")
	t.Setenv("OTHELLO_WEIGHTS_PATH", "/tmp/w.yaml")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigThreads), 4)
	is.Equal(cfg.GetString(ConfigWeightsPath), "/tmp/w.yaml")

	// flags beat the environment
	is.NoErr(cfg.Load([]string{"--threads=2"}))
	is.Equal(cfg.GetInt(ConfigThreads), 2)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
