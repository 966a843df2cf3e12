// Package auction picks creatives for ad slots. Selection is pure: it reads a
// catalog snapshot and a random source and never touches storage.
//
// One auction runs as an ordered pipeline:
//  1. keep only the highest priority tier
//  2. drop candidates whose advertiser cannot pay for a single event
//  3. weight by expected value per impression, jitter, contextual boost
//  4. roulette-wheel draw proportional to weight
package auction

import (
	"slices"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// Params tunes the weighting step.
type Params struct {
	// EstimatedCTR converts a CPC price into an expected value per
	// impression. It is used for ranking only, never for billing.
	EstimatedCTR float64
	// ContextBoost multiplies the weight of campaigns targeting the
	// request's subject.
	ContextBoost float64
	// JitterMin and JitterMax bound the uniform weight multiplier.
	JitterMin float64
	JitterMax float64
}

// DefaultParams returns the production tuning.
func DefaultParams() Params {
	return Params{
		EstimatedCTR: 0.015,
		ContextBoost: 5,
		JitterMin:    0.8,
		JitterMax:    1.2,
	}
}

// Pick is a selected (campaign, creative) pair.
type Pick struct {
	Campaign *domain.Campaign
	Creative domain.Creative
}

// Ad converts the pick into the value returned to the rendering layer.
func (p Pick) Ad() domain.Ad {
	return domain.NewAd(p.Campaign, p.Creative)
}

// Selector runs auctions with fixed Params.
type Selector struct {
	params Params
}

// NewSelector creates a selector.
func NewSelector(p Params) *Selector {
	return &Selector{params: p}
}

// Select runs one auction over campaigns and returns the winning campaign
// with one of its creatives, drawn uniformly. Creatives in exclude are never
// returned, and campaigns left without creatives drop out before the
// priority tier is computed. It reports false when nothing can be shown.
func (s *Selector) Select(rnd port.RandomSource, campaigns []domain.Campaign, subjectID string, exclude map[int64]struct{}) (Pick, bool) {
	pool := make([]Pick, 0, len(campaigns))
	for i := range campaigns {
		if hasCreative(&campaigns[i], exclude) {
			pool = append(pool, Pick{Campaign: &campaigns[i]})
		}
	}
	idx, ok := s.draw(rnd, pool, subjectID)
	if !ok {
		return Pick{}, false
	}
	winner := pool[idx].Campaign

	available := make([]domain.Creative, 0, len(winner.Creatives))
	for _, cr := range winner.Creatives {
		if _, skip := exclude[cr.ID]; !skip {
			available = append(available, cr)
		}
	}
	n := int(rnd.Float64() * float64(len(available)))
	if n >= len(available) {
		n = len(available) - 1
	}
	return Pick{Campaign: winner, Creative: available[n]}, true
}

// Weight returns the auction weight of c for a request on subjectID,
// including jitter drawn from rnd.
func (s *Selector) Weight(rnd port.RandomSource, c *domain.Campaign, subjectID string) float64 {
	var base float64
	switch c.BillingType {
	case domain.BillingCPM:
		base = float64(c.CostValue) / 1000
	default:
		base = float64(c.CostValue) * s.params.EstimatedCTR
	}
	jitter := s.params.JitterMin + rnd.Float64()*(s.params.JitterMax-s.params.JitterMin)
	w := base * jitter
	if c.Targets(subjectID) {
		w *= s.params.ContextBoost
	}
	return w
}

// draw returns the index of the winning entry of pool.
func (s *Selector) draw(rnd port.RandomSource, pool []Pick, subjectID string) (int, bool) {
	if len(pool) == 0 {
		return 0, false
	}

	// priority tier
	top := pool[0].Campaign.Priority
	for _, p := range pool[1:] {
		top = max(top, p.Campaign.Priority)
	}

	candidates := make([]int, 0, len(pool))
	for i, p := range pool {
		c := p.Campaign
		if c.Priority != top {
			continue
		}
		if c.Advertiser.Balance < c.CostPerEvent() {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return 0, false
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, idx := range candidates {
		weights[i] = s.Weight(rnd, pool[idx].Campaign, subjectID)
		total += weights[i]
	}

	// Free campaigns carry no weight; share the slot evenly between them.
	if total <= 0 {
		n := int(rnd.Float64() * float64(len(candidates)))
		return candidates[min(n, len(candidates)-1)], true
	}

	r := rnd.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return candidates[i], true
		}
	}
	return candidates[len(candidates)-1], true
}

func hasCreative(c *domain.Campaign, exclude map[int64]struct{}) bool {
	return slices.ContainsFunc(c.Creatives, func(cr domain.Creative) bool {
		_, skip := exclude[cr.ID]
		return !skip
	})
}
