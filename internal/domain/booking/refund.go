package booking

import (
	"sort"
	"time"
)

type Refund struct {
	Percent int
	Amount  Money
}

type RefundPolicy interface {
	Refund(now, start time.Time, price Money) Refund
}

type RefundTier struct {
	MinLeadTime time.Duration
	Percent     int
}

// TieredRefundPolicy grants the percent of the first tier whose lead time is met.
type TieredRefundPolicy struct {
	tiers []RefundTier
}

func NewTieredRefundPolicy(tiers ...RefundTier) *TieredRefundPolicy {
	sorted := make([]RefundTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinLeadTime > sorted[j].MinLeadTime
	})
	return &TieredRefundPolicy{tiers: sorted}
}

// 48h+ full refund, 24h+ half, otherwise nothing.
func NewDefaultRefundPolicy() *TieredRefundPolicy {
	return NewTieredRefundPolicy(
		RefundTier{MinLeadTime: 48 * time.Hour, Percent: 100},
		RefundTier{MinLeadTime: 24 * time.Hour, Percent: 50},
	)
}

func (p *TieredRefundPolicy) Refund(now, start time.Time, price Money) Refund {
	lead := start.Sub(now)
	for _, tier := range p.tiers {
		if lead >= tier.MinLeadTime {
			return Refund{Percent: tier.Percent, Amount: price.Percent(tier.Percent)}
		}
	}
	return Refund{Percent: 0, Amount: NewMoney(0)}
}
