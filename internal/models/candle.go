package models

// CandleSeries — дневные OHLCV одной монеты параллельными массивами.
// Все массивы одной длины; кэш требует >= 8 баров, волатильность >= 2.
type CandleSeries struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []float64 `json:"volume"`
	Time   []int64   `json:"time"`
}

func (s CandleSeries) Len() int { return len(s.Close) }

// Bar — один дневной бар, срез по индексу из параллельных массивов.
type Bar struct {
	Open, High, Low, Close float64
}

func (s CandleSeries) Bar(i int) Bar {
	return Bar{Open: s.Open[i], High: s.High[i], Low: s.Low[i], Close: s.Close[i]}
}
