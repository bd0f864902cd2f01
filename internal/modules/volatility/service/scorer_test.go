package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refConfig = ScoreConfig{Slope: 1.2, Intercept: -24.8, Stdev: 0.55}

func TestScoreFormula(t *testing.T) {
	const cap = 50_000_000.0
	const pctVol = 3.0

	z, remark, ok := Score(refConfig, pctVol, cap)
	require.True(t, ok)

	expected := 1.2*math.Log(cap) - 24.8
	assert.InDelta(t, (math.Log(pctVol)-expected)/0.55, z, 1e-9)
	assert.NotEmpty(t, remark)
}

func TestScoreSkipsBadInput(t *testing.T) {
	_, _, ok := Score(refConfig, 0, 50_000_000)
	assert.False(t, ok)

	_, _, ok = Score(refConfig, -1, 50_000_000)
	assert.False(t, ok)

	_, _, ok = Score(refConfig, 2, 0)
	assert.False(t, ok)

	_, _, ok = Score(ScoreConfig{Slope: 1.2, Intercept: -24.8}, 2, 50_000_000)
	assert.False(t, ok, "zero stdev would divide by zero")
}

func TestRemarkBands(t *testing.T) {
	cases := []struct {
		z    float64
		want string
	}{
		{-1.3, "too cold"},
		{-1.2, "slightly cold"},
		{-0.6, "slightly cold"},
		{-0.5, "ideal"},
		{0, "ideal"},
		{0.5, "ideal"},
		{0.51, "slightly hot"},
		{1.2, "slightly hot"},
		{1.21, "high, breakout risk"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, remarkFor(tc.z), "z=%v", tc.z)
	}
}
