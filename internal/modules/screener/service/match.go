package service

import (
	"strings"

	"accum_scanner/internal/helper"
	"accum_scanner/internal/models"
)

// Matcher сверяет монету из рейтинга с фьючерсным каталогом.
// Каталог приходит уже отсортированным по RawSymbol, поэтому
// first-match-wins детерминирован.
type Matcher struct {
	instruments []models.FuturesInstrument
}

func NewMatcher(instruments []models.FuturesInstrument) *Matcher {
	return &Matcher{instruments: instruments}
}

// Match ищет фьючерс для пары (symbol, name) из рейтинга.
// Сначала полный проход со снятием префикса-множителя: нормализованная
// база должна совпасть с первым токеном имени либо с символом. Если
// ничего не нашлось — запасной точный матч по символу без префиксов,
// делитель 1. Нет и его — явный «недоступен», не nil.
func (m *Matcher) Match(symbol, name string) models.MatchResult {
	nameToken := helper.FirstNameToken(name)
	symLower := strings.ToLower(symbol)

	for _, in := range m.instruments {
		base, divisor := helper.StripMultiplier(strings.ToLower(in.BaseCoin))
		if base == nameToken || base == symLower {
			return models.MatchResult{
				Available:     true,
				FuturesSymbol: in.RawSymbol,
				BaseCoin:      in.BaseCoin,
				Price:         in.LastPrice / divisor,
				Divisor:       divisor,
			}
		}
	}

	for _, in := range m.instruments {
		if strings.EqualFold(in.BaseCoin, symbol) {
			return models.MatchResult{
				Available:     true,
				FuturesSymbol: in.RawSymbol,
				BaseCoin:      in.BaseCoin,
				Price:         in.LastPrice,
				Divisor:       1,
			}
		}
	}

	return models.NoMatch()
}
