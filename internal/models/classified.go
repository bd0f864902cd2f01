package models

// Pattern — сигнатура аккумуляции по трём горизонтам (24h/7d/30d).
type Pattern string

const (
	PatternNone     Pattern = ""
	PatternStrong   Pattern = "strong"
	PatternQuiet    Pattern = "quiet"
	PatternHidden   Pattern = "hidden"
	PatternEarly    Pattern = "early"
	PatternSideways Pattern = "sideways"
	PatternPressure Pattern = "pressure"
	PatternNeutral  Pattern = "neutral"
)

// VolCapStatus — итог проверки vol/cap против здорового диапазона тира.
type VolCapStatus struct {
	InRange bool
	Min     float64 // границы тира, для диагностики в отчёте
	Max     float64
	Comment string
}

// ClassifiedInstrument — итог одного инструмента за цикл сканирования.
// Создаётся один раз, не мутирует, заменяется следующим полным сканом.
type ClassifiedInstrument struct {
	Market MarketRecord
	Match  MatchResult

	Tier           Tier
	IsAccumulating bool
	Pattern        Pattern
	VolCap         VolCapStatus
}

// VolatilityRecord — результат отдельного прохода по волатильности,
// ключуется фьючерсным символом уже классифицированного инструмента.
type VolatilityRecord struct {
	Symbol        string
	PctVolatility float64
	ZScore        float64
	Remark        string
}
