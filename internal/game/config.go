package game

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// SeedSource records where the run's seed came from.
type SeedSource int

const (
	SeedFromClock SeedSource = iota
	SeedFromFlag
)

func (s SeedSource) String() string {
	if s == SeedFromFlag {
		return "flag"
	}
	return "clock"
}

// Config is the command-line configuration of the game binary.
type Config struct {
	Seed       int64
	SeedSource SeedSource
	Warning    string // non-empty when the seed flag was ignored
	Title      string
	TPS        int

	seedArg string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Title: "Carnobyl", TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.seedArg, "seed", "", "world seed (default: current time in milliseconds)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
}

// ParseArgs parses the command line (without the program name). A missing
// or malformed seed falls back to now in Unix milliseconds; the malformed
// case also sets Warning.
func ParseArgs(args []string, now time.Time) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("carnobyl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	args, dangling := trimDanglingSeed(args)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("parse args: tps must be positive, got %d", cfg.TPS)
	}

	cfg.Seed = now.UnixMilli()
	cfg.SeedSource = SeedFromClock
	if dangling {
		cfg.Warning = fmt.Sprintf("ignoring --seed without a value, using %d", cfg.Seed)
		return cfg, nil
	}
	if cfg.seedArg == "" {
		return cfg, nil
	}
	seed, err := strconv.ParseInt(cfg.seedArg, 10, 64)
	if err != nil {
		cfg.Warning = fmt.Sprintf("ignoring malformed seed %q, using %d", cfg.seedArg, cfg.Seed)
		return cfg, nil
	}
	cfg.Seed = seed
	cfg.SeedSource = SeedFromFlag
	return cfg, nil
}

// trimDanglingSeed drops a trailing seed flag that has no value, which the
// flag package would otherwise reject.
func trimDanglingSeed(args []string) ([]string, bool) {
	n := len(args)
	if n == 0 {
		return args, false
	}
	for _, a := range args[:n-1] {
		if a == "--" {
			return args, false
		}
	}
	if last := args[n-1]; last == "-seed" || last == "--seed" {
		return args[:n-1], true
	}
	return args, false
}

// SeedCommand is the command line that reproduces this run's world.
func SeedCommand(seed int64) string {
	return fmt.Sprintf("carnobyl --seed %d", seed)
}
