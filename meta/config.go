package meta

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config gathers every tunable of the agent and of self-play runs.
type Config struct {
	Depth  int           `yaml:"depth"`
	Model  string        `yaml:"model"`
	Budget time.Duration `yaml:"budget"` // Wall-clock time per move, 0 searches at Depth only
	K      float64       `yaml:"k"`
	Radius int           `yaml:"radius"`

	LogLevel string `yaml:"log_level"`

	Dimension    int    `yaml:"dimension"`
	BonusSquares int    `yaml:"bonus_squares"` // Random bonus squares per self-play game
	Games        int    `yaml:"games"`
	Parallel     int    `yaml:"parallel"`
	Seed         uint64 `yaml:"seed"`
	OutDir       string `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Depth:        DefaultDepth,
		Model:        "maxn",
		Budget:       DefaultBudget,
		K:            DefaultK,
		Radius:       DefaultRadius,
		LogLevel:     "info",
		Dimension:    DIMENSION,
		BonusSquares: 4,
		Games:        GAMES,
		Parallel:     GO_ROUTINES,
		Seed:         1,
		OutDir:       "experiments",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Depth < -1 {
		errs = append(errs, fmt.Errorf("depth %d below -1", c.Depth))
	}
	if c.Budget < 0 {
		errs = append(errs, fmt.Errorf("negative budget %s", c.Budget))
	}
	if c.Radius < 1 {
		errs = append(errs, fmt.Errorf("radius %d below 1", c.Radius))
	}
	if c.Dimension < 2 {
		errs = append(errs, fmt.Errorf("dimension %d below 2", c.Dimension))
	}
	if c.BonusSquares < 0 || c.BonusSquares > c.Dimension*c.Dimension {
		errs = append(errs, fmt.Errorf("bonus squares %d do not fit the board", c.BonusSquares))
	}
	if c.Games < 0 {
		errs = append(errs, fmt.Errorf("negative game count %d", c.Games))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel %d below 1", c.Parallel))
	}
	return errors.Join(errs...)
}
