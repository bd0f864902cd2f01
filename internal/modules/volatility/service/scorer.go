package service

import (
	"math"
)

// ScoreConfig — коэффициенты лог-лог регрессии ожидаемой волатильности
// от капитализации и sigma остатков. Калибруются офлайн по истории и
// периодически пересчитываются, поэтому приходят из конфига.
type ScoreConfig struct {
	Slope     float64 // референс 1.2
	Intercept float64 // референс -24.8
	Stdev     float64 // референс 0.55
}

// Score переводит (pctVolatility, marketCap) в Z-оценку относительно
// регрессионного базлайна. Лог не определён на неположительных входах —
// тогда (0, "", false), вызывающий молча пропускает инструмент.
func Score(cfg ScoreConfig, pctVolatility, marketCap float64) (float64, string, bool) {
	if pctVolatility <= 0 || marketCap <= 0 || cfg.Stdev <= 0 {
		return 0, "", false
	}
	expectedLogVol := cfg.Slope*math.Log(marketCap) + cfg.Intercept
	z := (math.Log(pctVolatility) - expectedLogVol) / cfg.Stdev
	return z, remarkFor(z), true
}

func remarkFor(z float64) string {
	switch {
	case z < -1.2:
		return "too cold"
	case z < -0.5:
		return "slightly cold"
	case z <= 0.5:
		return "ideal"
	case z <= 1.2:
		return "slightly hot"
	default:
		return "high, breakout risk"
	}
}
