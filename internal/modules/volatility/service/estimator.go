package service

import (
	"math"
	"time"

	"accum_scanner/internal/helper"
	"accum_scanner/internal/models"
)

// Estimator считает процентную волатильность по двум последним дневным
// барам. Наивная двухбарная сигма перевешивает незавершённый сегодняшний
// бар в начале UTC-суток, поэтому вклад каждого бара взвешивается долей
// прошедшего дня — оценка ведёт себя одинаково в любое время суток.
type Estimator struct {
	now func() time.Time
}

func NewEstimator() *Estimator {
	return &Estimator{now: time.Now}
}

// Estimate: series в хронологическом порядке, последний бар — сегодня
// (возможно частичный). Меньше двух баров — оценки нет, это не ошибка.
func (e *Estimator) Estimate(series models.CandleSeries) (float64, bool) {
	n := series.Len()
	if n < 2 {
		return 0, false
	}

	y := series.Bar(n - 2)
	t := series.Bar(n - 1)
	if t.Close <= 0 {
		return 0, false
	}

	yMean := (y.Open + y.High + y.Low + y.Close) / 4
	tMean := (t.Open + t.High + t.Low + t.Close) / 4
	gMean := (yMean + tMean) / 2

	tWeight := helper.SecondsIntoUTCDay(e.now().Unix()) / 86_400
	yWeight := 1 - tWeight

	variance := (yMean-gMean)*(yMean-gMean)*yWeight +
		(tMean-gMean)*(tMean-gMean)*tWeight

	return 100 * math.Sqrt(variance) / t.Close, true
}
