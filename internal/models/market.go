package models

// MarketRecord — снапшот одной монеты из рейтинга по капитализации.
// Иммутабелен в рамках одного цикла сканирования.
type MarketRecord struct {
	Symbol       string
	Name         string
	Price        float64
	Volume24h    float64
	MarketCap    float64
	PctChange24h float64
	PctChange7d  float64
	PctChange30d float64
}

// FuturesInstrument — строка фьючерсного каталога после джойна
// instruments-info и tickers по символу.
type FuturesInstrument struct {
	RawSymbol string // например "1000SHIBUSDT"
	BaseCoin  string // upper-case, с префиксом множителя
	QuoteCoin string
	LastPrice float64
}

// UnavailableSymbol — сентинел вместо null, когда фьючерса нет.
const UnavailableSymbol = "-"

// MatchResult — результат сверки MarketRecord с фьючерсным каталогом.
// Инвариант: Divisor >= 1, эффективная цена = сырая цена / Divisor.
type MatchResult struct {
	Available     bool
	FuturesSymbol string
	BaseCoin      string
	Price         float64
	Divisor       float64
}

// NoMatch возвращает явный «недоступен» без nil-полей.
func NoMatch() MatchResult {
	return MatchResult{
		Available:     false,
		FuturesSymbol: UnavailableSymbol,
		BaseCoin:      UnavailableSymbol,
		Price:         0,
		Divisor:       1,
	}
}
