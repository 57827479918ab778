package advisor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"baosam/internal/domain"
	"baosam/internal/engine"
)

// patternParamsFile is the trained parameter file expected under the
// provider's model directory.
const patternParamsFile = "declare_params.json"

// patternParams are the trained weights of the pattern provider: a linear
// blend over the plan's feature vector plus a bias, clamped to [0, 1].
type patternParams struct {
	Bias               float64 `json:"bias"`
	AvgStrength        float64 `json:"avg_strength"`
	MaxStrength        float64 `json:"max_strength"`
	UnbeatableRate     float64 `json:"unbeatable_rate"`
	PowerConcentration float64 `json:"power_concentration"`
	ComboDiversity     float64 `json:"combo_diversity"`
	Coverage           float64 `json:"coverage"`
}

// PatternProvider assesses plans with trained parameters loaded from disk.
// The load probe fails when the model directory or parameter file is
// missing, which drops the chain through to the heuristic provider.
type PatternProvider struct {
	modelDir string
	params   *patternParams
}

// NewPatternProvider builds a provider reading parameters under modelDir.
func NewPatternProvider(modelDir string) *PatternProvider {
	return &PatternProvider{modelDir: modelDir}
}

func (p *PatternProvider) Name() string { return "pattern" }

// TryLoad reads and validates the parameter file. Loading is idempotent.
func (p *PatternProvider) TryLoad() error {
	if p.params != nil {
		return nil
	}
	if p.modelDir == "" {
		return fmt.Errorf("no model directory configured")
	}

	path := filepath.Join(p.modelDir, patternParamsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read params: %w", err)
	}

	var params patternParams
	if err := json.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("parse params %s: %w", path, err)
	}
	p.params = &params
	return nil
}

// Assess blends the plan's feature vector with the trained weights.
func (p *PatternProvider) Assess(_ []domain.Card, seq domain.Sequence) (Assessment, error) {
	if p.params == nil {
		return Assessment{}, fmt.Errorf("pattern provider not loaded")
	}

	feats := engine.ExtractPatternFeatures(seq.Combos)
	est := engine.EstimateWinProbability(seq.Combos)

	prob := p.params.Bias +
		p.params.AvgStrength*feats.AvgStrength +
		p.params.MaxStrength*feats.MaxStrength +
		p.params.UnbeatableRate*est.UnbeatableRate +
		p.params.PowerConcentration*feats.PowerConcentration +
		p.params.ComboDiversity*feats.ComboDiversity +
		p.params.Coverage*seq.Coverage
	if prob < 0 {
		prob = 0
	}
	if prob > 1 {
		prob = 1
	}

	return Assessment{
		WinProbability: prob,
		Confidence:     est.Confidence,
		Provider:       p.Name(),
	}, nil
}
