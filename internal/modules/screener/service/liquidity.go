package service

import (
	"math"
	"strings"

	"accum_scanner/internal/models"
)

// Стейблы не аккумулируются по определению, выкидываем сразу.
var stablecoins = map[string]struct{}{
	"USDT":  {},
	"USDC":  {},
	"DAI":   {},
	"TUSD":  {},
	"FDUSD": {},
	"USDD":  {},
	"USDE":  {},
	"PYUSD": {},
	"BUSD":  {},
	"USDP":  {},
	"GUSD":  {},
}

func IsStablecoin(symbol string) bool {
	_, ok := stablecoins[strings.ToUpper(symbol)]
	return ok
}

// IsIlliquid: vol/cap ниже порога своего тира. Тонкий объём против капы —
// признак wash-trading, такие монеты портят и классификатор, и базлайн
// регрессии волатильности.
func IsIlliquid(volume24h, marketCap float64) bool {
	if marketCap < models.MinMarketCap || math.IsNaN(marketCap) || math.IsInf(marketCap, 0) {
		return true
	}
	ratio := volume24h / marketCap
	if math.IsNaN(ratio) {
		return true
	}
	return ratio < models.TierFor(marketCap).IlliquidityFloor()
}

// InScope — полный гейт ликвидности: капа от 10M, не стейбл, не неликвид.
func InScope(rec models.MarketRecord) bool {
	if rec.MarketCap < models.MinMarketCap {
		return false
	}
	if IsStablecoin(rec.Symbol) {
		return false
	}
	return !IsIlliquid(rec.Volume24h, rec.MarketCap)
}
