package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher/agent"
	"os"
	"time"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)

// AgentConfig describes how to build an agent, e.g.
//
//	algorithm: alphabeta
//	score_fn: move_ratio
//	timeout: 10 # milliseconds
type AgentConfig struct {
	Algorithm   string  `yaml:"algorithm"`
	SearchDepth int     `yaml:"search_depth"`
	ScoreFn     string  `yaml:"score_fn"`
	Timeout     float64 `yaml:"timeout"`   // Milliseconds
	MaxDepth    int     `yaml:"max_depth"` // Alpha-beta only, 0 for no limit
	Seed        *uint64 `yaml:"seed"`      // Random source for fallback moves, time seeded if unset
}

// Default returns the configuration used for missing fields
func Default() AgentConfig {
	return AgentConfig{
		Algorithm:   meta.ALGORITHM,
		SearchDepth: meta.SEARCH_DEPTH,
		ScoreFn:     meta.SCORE_FN,
		Timeout:     float64(meta.TIMER_THRESHOLD) / float64(time.Millisecond),
	}
}

// Load reads an agent configuration from a YAML file
func Load(path string) (AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AgentConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an agent configuration, filling defaults for missing fields
func Parse(data []byte) (AgentConfig, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document keeps the defaults
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AgentConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return AgentConfig{}, err
	}
	return cfg, nil
}

func (c AgentConfig) Validate() error {
	if c.Algorithm != Minimax && c.Algorithm != AlphaBeta {
		return fmt.Errorf("invalid algorithm %q (expected %s or %s)", c.Algorithm, Minimax, AlphaBeta)
	}
	if c.SearchDepth <= 0 {
		return fmt.Errorf("invalid search_depth %d: must be positive", c.SearchDepth)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %v: must be positive", c.Timeout)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d: must not be negative", c.MaxDepth)
	}
	if _, err := game.LookupEvaluate(c.ScoreFn); err != nil {
		return fmt.Errorf("invalid score_fn: %w", err)
	}
	return nil
}

// TimeoutDuration converts the millisecond timeout
func (c AgentConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout * float64(time.Millisecond))
}

// NewAgent builds the configured agent
func (c AgentConfig) NewAgent(options ...agent.Option) (agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	evaluate, err := game.LookupEvaluate(c.ScoreFn)
	if err != nil {
		return nil, err
	}

	opts := []agent.Option{
		agent.WithSearchDepth(c.SearchDepth),
		agent.WithMaxDepth(c.MaxDepth),
		agent.WithScoreFn(evaluate),
		agent.WithTimeout(c.TimeoutDuration()),
	}
	if c.Seed != nil {
		opts = append(opts, agent.WithRand(rand.New(rand.NewSource(*c.Seed))))
	}
	opts = append(opts, options...)

	if c.Algorithm == Minimax {
		return agent.NewMinimaxAgent(opts...), nil
	}
	return agent.NewAlphaBetaAgent(opts...), nil
}
