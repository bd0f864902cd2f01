package service

import (
	"testing"
	"time"

	"accum_scanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(bars ...models.Bar) models.CandleSeries {
	var s models.CandleSeries
	for i, b := range bars {
		s.Open = append(s.Open, b.Open)
		s.High = append(s.High, b.High)
		s.Low = append(s.Low, b.Low)
		s.Close = append(s.Close, b.Close)
		s.Volume = append(s.Volume, 0)
		s.Time = append(s.Time, int64(i)*86_400)
	}
	return s
}

func estimatorAt(t *testing.T, utc time.Time) *Estimator {
	t.Helper()
	e := NewEstimator()
	e.now = func() time.Time { return utc }
	return e
}

func TestEstimateIdenticalBarsIsZero(t *testing.T) {
	bar := models.Bar{Open: 100, High: 110, Low: 90, Close: 105}
	s := seriesOf(bar, bar)

	// одинаковые бары дают ровно 0 при любом весе времени
	for _, hour := range []int{0, 6, 12, 23} {
		e := estimatorAt(t, time.Date(2026, 8, 30, hour, 0, 0, 0, time.UTC))
		pct, ok := e.Estimate(s)
		require.True(t, ok)
		assert.Equal(t, 0.0, pct)
	}
}

func TestEstimateTimeWeighted(t *testing.T) {
	y := models.Bar{Open: 100, High: 100, Low: 100, Close: 100} // yMean 100
	d := models.Bar{Open: 110, High: 110, Low: 110, Close: 110} // tMean 110
	s := seriesOf(y, d)

	// 06:00 UTC: tWeight 0.25 -> var = 25*0.75 + 25*0.25 = 25, std 5
	e := estimatorAt(t, time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC))
	pct, ok := e.Estimate(s)
	require.True(t, ok)
	assert.InDelta(t, 100*5.0/110, pct, 1e-9)

	// в полночь сегодняшний бар не весит ничего, но дисперсия та же:
	// оба средних равноудалены от общего среднего
	e = estimatorAt(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	pct, ok = e.Estimate(s)
	require.True(t, ok)
	assert.InDelta(t, 100*5.0/110, pct, 1e-9)
}

func TestEstimateRequiresTwoBars(t *testing.T) {
	_, ok := NewEstimator().Estimate(seriesOf(models.Bar{Open: 1, High: 1, Low: 1, Close: 1}))
	assert.False(t, ok)

	_, ok = NewEstimator().Estimate(models.CandleSeries{})
	assert.False(t, ok)
}

func TestEstimateSkipsNonPositiveClose(t *testing.T) {
	s := seriesOf(models.Bar{Open: 1, High: 1, Low: 1, Close: 1}, models.Bar{})
	_, ok := NewEstimator().Estimate(s)
	assert.False(t, ok)
}
