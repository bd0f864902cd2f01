package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckVolCapInRange(t *testing.T) {
	// cap 50M -> Small, здоровый диапазон [0.03716, 0.08656]; ratio 0.04
	st := CheckVolCap(2_000_000, 50_000_000)
	assert.True(t, st.InRange)
	assert.Equal(t, 0.03716, st.Min)
	assert.Equal(t, 0.08656, st.Max)
	assert.Contains(t, st.Comment, "in range")
}

func TestCheckVolCapOutOfRange(t *testing.T) {
	st := CheckVolCap(100_000, 50_000_000) // ratio 0.002
	assert.False(t, st.InRange)
	assert.Equal(t, 0.03716, st.Min)
	assert.Equal(t, 0.08656, st.Max)
	assert.Contains(t, st.Comment, "out of range")
}

func TestCheckVolCapNeutralOnBadInput(t *testing.T) {
	empty := CheckVolCap(math.NaN(), 50_000_000)
	assert.Equal(t, "", empty.Comment)
	assert.False(t, empty.InRange)

	assert.Equal(t, empty, CheckVolCap(1_000_000, math.Inf(1)))
	assert.Equal(t, empty, CheckVolCap(1_000_000, 0))
	assert.Equal(t, empty, CheckVolCap(1_000_000, 5_000_000), "cap below 10M has no tier")
}
