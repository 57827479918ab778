package advisor

import (
	"errors"
	"fmt"

	"baosam/internal/domain"
)

// Assessment is one provider's judgement of a declaration plan.
type Assessment struct {
	WinProbability float64 `json:"win_probability"`
	Confidence     float64 `json:"confidence"`
	Provider       string  `json:"provider"`
}

// Provider assesses the win chance of a play sequence. TryLoad reports
// whether the provider can serve at all; providers backed by trained
// parameters fail the probe when their files are missing.
type Provider interface {
	Name() string
	TryLoad() error
	Assess(hand []domain.Card, seq domain.Sequence) (Assessment, error)
}

// ErrNoProvider means every provider in a chain failed its load probe.
var ErrNoProvider = errors.New("advisor: no provider available")

// Chain is an ordered provider fallback list. Resolution walks the list
// front to back and settles on the first provider whose probe succeeds;
// callers see exactly which provider answered.
type Chain struct {
	providers []Provider
}

// NewChain builds a chain over the given providers, most preferred first.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Resolve returns the first loadable provider, or ErrNoProvider wrapping
// the individual probe failures.
func (c *Chain) Resolve() (Provider, error) {
	var probeErrs []error
	for _, p := range c.providers {
		if err := p.TryLoad(); err != nil {
			probeErrs = append(probeErrs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		return p, nil
	}
	return nil, errors.Join(ErrNoProvider, errors.Join(probeErrs...))
}

// Assess resolves the chain and delegates to the chosen provider.
func (c *Chain) Assess(hand []domain.Card, seq domain.Sequence) (Assessment, error) {
	p, err := c.Resolve()
	if err != nil {
		return Assessment{}, err
	}
	return p.Assess(hand, seq)
}
