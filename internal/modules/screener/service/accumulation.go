package service

import (
	"accum_scanner/internal/models"
)

// Широкий гейт аккумуляции: узкие 24h/7d, неотрицательный месяц.
const (
	gate24Lo, gate24Hi = -6, 6
	gate7Lo, gate7Hi   = -10, 10
	gate30Lo, gate30Hi = 0, 25
)

type interval struct {
	lo, hi float64
}

type patternDef struct {
	name models.Pattern
	c24  interval
	c7   interval
	c30  interval
}

// Паттерны в порядке приоритета: расширенные толерансом интервалы
// перекрываются, так что порядок — часть определения, первый полный
// матч побеждает.
var patternDefs = []patternDef{
	{models.PatternStrong, interval{0, 5}, interval{0, 8}, interval{10, 20}},
	{models.PatternQuiet, interval{-5, 0}, interval{0, 5}, interval{10, 20}},
	{models.PatternHidden, interval{0, 5}, interval{-5, 0}, interval{5, 15}},
	{models.PatternEarly, interval{-5, 0}, interval{-5, 0}, interval{5, 15}},
	{models.PatternSideways, interval{0, 5}, interval{0, 5}, interval{0, 10}},
	{models.PatternPressure, interval{-3, 0}, interval{-8, -2}, interval{0, 10}},
	{models.PatternNeutral, interval{-5, 5}, interval{-8, 8}, interval{0, 5}},
}

// applyTolerance расширяет [lo,hi] пропорционально ширине: точечные
// пороги по процентам хрупкие, а пропорциональное расширение убирает
// ложные отрицания у границ, не размывая широкие интервалы.
func applyTolerance(lo, hi float64) (float64, float64) {
	tol := 0.15 * (hi - lo)
	if tol < 1 {
		tol = 1
	}
	if tol > 3 {
		tol = 3
	}
	return lo - tol, hi + tol
}

func (iv interval) containsWidened(v float64) bool {
	lo, hi := applyTolerance(iv.lo, iv.hi)
	return v >= lo && v <= hi
}

// IsAccumulating — стадия 1, широкий гейт по трём горизонтам.
func IsAccumulating(c24, c7, c30 float64) bool {
	return c24 >= gate24Lo && c24 <= gate24Hi &&
		c7 >= gate7Lo && c7 <= gate7Hi &&
		c30 >= gate30Lo && c30 <= gate30Hi
}

// ClassifyPattern — стадия 2. Вызывается только после прохода гейта;
// ни один паттерн не подошёл — PatternNone («no clear accumulation»).
func ClassifyPattern(c24, c7, c30 float64) models.Pattern {
	for _, def := range patternDefs {
		if def.c24.containsWidened(c24) &&
			def.c7.containsWidened(c7) &&
			def.c30.containsWidened(c30) {
			return def.name
		}
	}
	return models.PatternNone
}

// Classify — обе стадии разом.
func Classify(rec models.MarketRecord) (bool, models.Pattern) {
	if !IsAccumulating(rec.PctChange24h, rec.PctChange7d, rec.PctChange30d) {
		return false, models.PatternNone
	}
	return true, ClassifyPattern(rec.PctChange24h, rec.PctChange7d, rec.PctChange30d)
}
