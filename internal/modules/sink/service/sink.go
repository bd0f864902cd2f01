package service

import (
	"context"

	"accum_scanner/internal/models"
)

// ScanSymbol — минимум, который нужен проходу волатильности из готовых
// результатов скана.
type ScanSymbol struct {
	FuturesSymbol string
	MarketCap     float64
}

// Sink — табличный приёмник результатов. Строки пишутся посканово,
// колонки волатильности дописываются отдельным проходом и никогда не
// затирают колонки скана.
type Sink interface {
	WriteScan(ctx context.Context, cycleDay string, byTier map[models.Tier][]models.ClassifiedInstrument) error
	// ScanSymbols — доступные фьючерсные символы цикла с капитализацией.
	ScanSymbols(ctx context.Context, cycleDay string) ([]ScanSymbol, error)
	UpdateVolatility(ctx context.Context, cycleDay string, rec models.VolatilityRecord) error
	AppendListings(ctx context.Context, rows []models.ExchangeListing) error
}
