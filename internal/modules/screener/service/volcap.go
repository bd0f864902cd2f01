package service

import (
	"fmt"
	"math"

	"accum_scanner/internal/models"
)

// CheckVolCap сравнивает vol/cap с здоровым диапазоном тира.
// Чистая функция; кривой вход (NaN, Inf, нулевая капа) — пустой
// нейтральный результат, не ошибка.
func CheckVolCap(volume24h, marketCap float64) models.VolCapStatus {
	if marketCap <= 0 ||
		math.IsNaN(volume24h) || math.IsInf(volume24h, 0) ||
		math.IsNaN(marketCap) || math.IsInf(marketCap, 0) {
		return models.VolCapStatus{}
	}
	tier := models.TierFor(marketCap)
	if tier == models.TierNone {
		return models.VolCapStatus{}
	}

	min, max := tier.VolCapRange()
	ratio := volume24h / marketCap

	st := models.VolCapStatus{
		InRange: ratio >= min && ratio <= max,
		Min:     min,
		Max:     max,
	}
	if st.InRange {
		st.Comment = fmt.Sprintf("in range [%.5f, %.5f]", min, max)
	} else {
		st.Comment = fmt.Sprintf("out of range [%.5f, %.5f]", min, max)
	}
	return st
}
