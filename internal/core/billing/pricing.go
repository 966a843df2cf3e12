// Package billing turns tracked events into integer charges.
package billing

import (
	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// CPMViewCharge returns the charge for a single view of a campaign priced
// costValue per 1000 views. The fractional part of costValue/1000 is settled
// by randomized rounding: the result is floor(costValue/1000), plus one unit
// with probability equal to the remainder, so the mean over many views is
// exactly costValue/1000 while every charge stays whole.
func CPMViewCharge(rnd port.RandomSource, costValue int64) int64 {
	base := costValue / 1000
	rem := costValue % 1000
	if rem > 0 && rnd.Float64() < float64(rem)/1000 {
		base++
	}
	return base
}

// EventAmount decides what an event on c costs. CPC campaigns pay the full
// price for clicks, CPM campaigns a rounded share per view, and every other
// combination is free. The result is never negative.
func EventAmount(rnd port.RandomSource, c *domain.Campaign, event domain.EventType) int64 {
	if c.CostValue <= 0 {
		return 0
	}
	switch {
	case c.BillingType == domain.BillingCPC && event == domain.EventClick:
		return c.CostValue
	case c.BillingType == domain.BillingCPM && event == domain.EventView:
		return CPMViewCharge(rnd, c.CostValue)
	default:
		return 0
	}
}
