package auction

import (
	"slices"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// Fill assembles a feed of up to n picks without repeating a creative.
// Every (campaign, creative) pair competes on its own; the tier and the
// weights are recomputed over the remaining pairs before each slot. Once the
// pool is used up the feed is returned short rather than refilled.
func (s *Selector) Fill(rnd port.RandomSource, campaigns []domain.Campaign, subjectID string, n int) []Pick {
	var pool []Pick
	for i := range campaigns {
		for _, cr := range campaigns[i].Creatives {
			pool = append(pool, Pick{Campaign: &campaigns[i], Creative: cr})
		}
	}

	picks := make([]Pick, 0, min(n, len(pool)))
	for len(picks) < n && len(pool) > 0 {
		idx, ok := s.draw(rnd, pool, subjectID)
		if !ok {
			break
		}
		chosen := pool[idx]
		picks = append(picks, chosen)
		pool = slices.DeleteFunc(pool, func(p Pick) bool {
			return p.Creative.ID == chosen.Creative.ID
		})
	}
	return picks
}
