package service

import (
	"context"
	"fmt"
	"time"

	"accum_scanner/internal/models"
	bybit "accum_scanner/internal/modules/bybit/service"
	"accum_scanner/internal/modules/candlecache"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/internal/notify"
	"accum_scanner/pkg/logger"

	"github.com/opentracing/opentracing-go"
)

// Кэш держит минимум 8 дневных баров на символ, волатильности хватает 2.
const minCachedBars = 8

// Pass — два шедулируемых прохода поверх результатов скана текущего дня:
// обновление кэша свечей и досчёт колонок волатильности.
type Pass struct {
	bybit     *bybit.Client
	cache     *candlecache.Cache
	sink      sink.Sink
	estimator *Estimator
	score     ScoreConfig
	notifier  notify.Notifier

	klineDays int
	pacing    time.Duration
	sleep     func(time.Duration)
}

func NewPass(bybitCli *bybit.Client, cache *candlecache.Cache, out sink.Sink, n notify.Notifier, score ScoreConfig, klineDays int, pacing time.Duration) *Pass {
	return &Pass{
		bybit:     bybitCli,
		cache:     cache,
		sink:      out,
		estimator: NewEstimator(),
		score:     score,
		notifier:  n,
		klineDays: klineDays,
		pacing:    pacing,
		sleep:     time.Sleep,
	}
}

// RefreshCache тянет дневные бары по всем доступным символам цикла и
// целиком заменяет кэш. Символ с упавшим запросом или короткой историей
// просто не попадает в кэш.
func (p *Pass) RefreshCache(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "candle_cache_refresh")
	defer span.Finish()

	cycleDay := time.Now().UTC().Format("2006-01-02")
	symbols, err := p.sink.ScanSymbols(ctx, cycleDay)
	if err != nil {
		return fmt.Errorf("scan symbols: %w", err)
	}

	fresh := make(map[string]models.CandleSeries, len(symbols))
	for i, sym := range symbols {
		if i > 0 {
			p.sleep(p.pacing)
		}
		series, err := p.bybit.Kline(ctx, sym.FuturesSymbol, p.klineDays)
		if err != nil {
			logger.Error("kline %s: %v", sym.FuturesSymbol, err)
			continue
		}
		if series.Len() < minCachedBars {
			continue
		}
		fresh[sym.FuturesSymbol] = series
	}

	if err := p.cache.Put(ctx, fresh); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	logger.Info("candle cache refreshed: %d of %d symbols", len(fresh), len(symbols))
	return nil
}

// Run досчитывает волатильность по кэшу и дописывает колонки в приёмник.
// Кривые данные (короткая серия, неположительные входы) пропускаются
// молча: частичный выход лучше сорванного батча.
func (p *Pass) Run(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "volatility_pass")
	defer span.Finish()

	cycleDay := time.Now().UTC().Format("2006-01-02")
	symbols, err := p.sink.ScanSymbols(ctx, cycleDay)
	if err != nil {
		return fmt.Errorf("scan symbols: %w", err)
	}

	cached, err := p.cache.Get(ctx)
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}

	scored := 0
	for _, sym := range symbols {
		series, ok := cached[sym.FuturesSymbol]
		if !ok {
			continue
		}
		pctVol, ok := p.estimator.Estimate(series)
		if !ok {
			continue
		}
		z, remark, ok := Score(p.score, pctVol, sym.MarketCap)
		if !ok {
			continue
		}

		rec := models.VolatilityRecord{
			Symbol:        sym.FuturesSymbol,
			PctVolatility: pctVol,
			ZScore:        z,
			Remark:        remark,
		}
		if err := p.sink.UpdateVolatility(ctx, cycleDay, rec); err != nil {
			logger.Error("update volatility %s: %v", sym.FuturesSymbol, err)
			continue
		}
		scored++
	}

	logger.Info("volatility %s: %d of %d symbols scored", cycleDay, scored, len(symbols))
	p.notifier.Sendf("volatility %s: %d/%d scored", cycleDay, scored, len(symbols))
	return nil
}
