package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForPartitionsCapRange(t *testing.T) {
	cases := []struct {
		cap  float64
		want Tier
	}{
		{9_999_999, TierNone},
		{10_000_000, TierMicro},
		{29_999_999, TierMicro},
		{30_000_000, TierSmall},
		{99_999_999, TierSmall},
		{100_000_000, TierMid},
		{299_999_999, TierMid},
		{300_000_000, TierLarge},
		{999_999_999, TierLarge},
		{1_000_000_000, TierMega},
		{50_000_000_000, TierMega},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.cap), "cap=%v", tc.cap)
	}
}

func TestTierThresholds(t *testing.T) {
	assert.Equal(t, 0.005, TierMicro.IlliquidityFloor())
	assert.Equal(t, 0.0005, TierMega.IlliquidityFloor())

	min, max := TierSmall.VolCapRange()
	assert.Equal(t, 0.03716, min)
	assert.Equal(t, 0.08656, max)

	// диапазоны заданы для всех пяти тиров и убывают с ростом капы
	prevMin := 1.0
	for _, tier := range Tiers() {
		lo, hi := tier.VolCapRange()
		assert.Greater(t, hi, lo, tier.String())
		assert.Less(t, lo, prevMin, tier.String())
		prevMin = lo
	}
}
