// Package config loads the module's tuning from a JSON file into a typed
// struct. Callers own the loaded value; there is no process-wide singleton.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"baosam/internal/advisor"
	"baosam/internal/engine"
)

// Config is the full tuning surface: gate thresholds, search parameters,
// advisor thresholds and the external endpoints.
type Config struct {
	Gate    engine.GateRules `json:"gate"`
	Search  SearchConfig     `json:"search"`
	Advisor advisor.Config   `json:"advisor"`

	// ModelDir points at the trained pattern parameters; empty disables
	// the pattern provider.
	ModelDir string `json:"model_dir"`
	// TrainingLogPath is the SQLite declaration log; empty disables logging.
	TrainingLogPath string `json:"training_log_path"`
	// NATSURL is the event bus endpoint; empty disables event publishing.
	NATSURL string `json:"nats_url"`
	// EventSubject overrides the declaration event subject.
	EventSubject string `json:"event_subject"`
}

// SearchConfig mirrors engine.SearchConfig with JSON tags for the file.
type SearchConfig struct {
	BeamSize       int     `json:"beam_size"`
	CoverageWeight float64 `json:"coverage_weight"`
	OrderWeight    float64 `json:"order_weight"`
}

// Default returns the stock tuning used when no config file is given.
func Default() Config {
	return Config{
		Gate: engine.DefaultGateRules,
		Search: SearchConfig{
			BeamSize:       engine.DefaultSearchConfig.BeamSize,
			CoverageWeight: engine.DefaultSearchConfig.CoverageWeight,
			OrderWeight:    engine.DefaultSearchConfig.OrderWeight,
		},
		Advisor: advisor.DefaultConfig,
	}
}

// Load reads a JSON config file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Search.BeamSize <= 0 {
		return fmt.Errorf("config: beam_size must be positive, got %d", c.Search.BeamSize)
	}
	if c.Advisor.DeclareThreshold < 0 || c.Advisor.DeclareThreshold > 1 {
		return fmt.Errorf("config: declare_threshold must be in [0,1], got %g", c.Advisor.DeclareThreshold)
	}
	if c.Advisor.TopK <= 0 {
		return fmt.Errorf("config: top_k must be positive, got %d", c.Advisor.TopK)
	}
	return nil
}

// EngineSearch converts the file form into the engine's tuning struct.
func (c Config) EngineSearch() engine.SearchConfig {
	return engine.SearchConfig{
		BeamSize:       c.Search.BeamSize,
		CoverageWeight: c.Search.CoverageWeight,
		OrderWeight:    c.Search.OrderWeight,
	}
}
