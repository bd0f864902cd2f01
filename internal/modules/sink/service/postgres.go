package service

import (
	"context"
	"time"

	"accum_scanner/internal/models"
	"accum_scanner/pkg/db"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const createScanTable = `
CREATE TABLE IF NOT EXISTS scan_results (
	cycle_day TEXT NOT NULL,
	tier TEXT NOT NULL,
	symbol TEXT NOT NULL,
	name TEXT NOT NULL,
	futures_symbol TEXT NOT NULL,
	base_coin TEXT NOT NULL,
	source_price DOUBLE PRECISION NOT NULL,
	futures_price DOUBLE PRECISION NOT NULL,
	volume_24h DOUBLE PRECISION NOT NULL,
	market_cap DOUBLE PRECISION NOT NULL,
	vol_cap_ratio DOUBLE PRECISION NOT NULL,
	available BOOLEAN NOT NULL,
	accumulating BOOLEAN NOT NULL,
	pattern_remark TEXT NOT NULL,
	vol_cap_comment TEXT NOT NULL,
	pct_volatility DOUBLE PRECISION,
	volatility_score DOUBLE PRECISION,
	volatility_remark TEXT,
	PRIMARY KEY (cycle_day, tier, symbol)
)`

const createListingsTable = `
CREATE TABLE IF NOT EXISTS exchange_listings (
	coin_id TEXT NOT NULL,
	name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	market_name TEXT NOT NULL,
	is_futures BOOLEAN NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL
)`

// PgSink пишет результаты в postgres. Ключ (cycle_day, tier, symbol):
// повторный скан того же дня перезаписывает строки скана, но не трогает
// уже досчитанные колонки волатильности — дополнительные колонки
// обновляются только своим проходом.
type PgSink struct {
	tm *db.PgTxManager
}

func NewPgSink(ctx context.Context, tm *db.PgTxManager) (*PgSink, error) {
	if _, err := tm.Conn().Exec(ctx, createScanTable); err != nil {
		return nil, errors.Wrap(err, "create scan_results")
	}
	if _, err := tm.Conn().Exec(ctx, createListingsTable); err != nil {
		return nil, errors.Wrap(err, "create exchange_listings")
	}
	return &PgSink{tm: tm}, nil
}

func (s *PgSink) WriteScan(ctx context.Context, cycleDay string, byTier map[models.Tier][]models.ClassifiedInstrument) error {
	return s.tm.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		for tier, instruments := range byTier {
			for _, ci := range instruments {
				ratio := 0.0
				if ci.Market.MarketCap > 0 {
					ratio = ci.Market.Volume24h / ci.Market.MarketCap
				}
				_, err := tx.Exec(ctxTx, `
					INSERT INTO scan_results (
						cycle_day, tier, symbol, name, futures_symbol, base_coin,
						source_price, futures_price, volume_24h, market_cap, vol_cap_ratio,
						available, accumulating, pattern_remark, vol_cap_comment
					) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
					ON CONFLICT (cycle_day, tier, symbol) DO UPDATE SET
						name = EXCLUDED.name,
						futures_symbol = EXCLUDED.futures_symbol,
						base_coin = EXCLUDED.base_coin,
						source_price = EXCLUDED.source_price,
						futures_price = EXCLUDED.futures_price,
						volume_24h = EXCLUDED.volume_24h,
						market_cap = EXCLUDED.market_cap,
						vol_cap_ratio = EXCLUDED.vol_cap_ratio,
						available = EXCLUDED.available,
						accumulating = EXCLUDED.accumulating,
						pattern_remark = EXCLUDED.pattern_remark,
						vol_cap_comment = EXCLUDED.vol_cap_comment`,
					cycleDay, tier.String(), ci.Market.Symbol, ci.Market.Name,
					ci.Match.FuturesSymbol, ci.Match.BaseCoin,
					ci.Market.Price, ci.Match.Price,
					ci.Market.Volume24h, ci.Market.MarketCap, ratio,
					ci.Match.Available, ci.IsAccumulating,
					string(ci.Pattern), ci.VolCap.Comment,
				)
				if err != nil {
					return errors.Wrapf(err, "insert %s/%s", tier, ci.Market.Symbol)
				}
			}
		}
		return nil
	})
}

func (s *PgSink) ScanSymbols(ctx context.Context, cycleDay string) ([]ScanSymbol, error) {
	rows, err := s.tm.Conn().Query(ctx, `
		SELECT DISTINCT futures_symbol, market_cap
		FROM scan_results
		WHERE cycle_day = $1 AND available`, cycleDay)
	if err != nil {
		return nil, errors.Wrap(err, "select scan symbols")
	}
	defer rows.Close()

	var out []ScanSymbol
	for rows.Next() {
		var sym ScanSymbol
		if err := rows.Scan(&sym.FuturesSymbol, &sym.MarketCap); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		out = append(out, sym)
	}
	return out, rows.Err()
}

func (s *PgSink) UpdateVolatility(ctx context.Context, cycleDay string, rec models.VolatilityRecord) error {
	_, err := s.tm.Conn().Exec(ctx, `
		UPDATE scan_results
		SET pct_volatility = $3, volatility_score = $4, volatility_remark = $5
		WHERE cycle_day = $1 AND futures_symbol = $2`,
		cycleDay, rec.Symbol, rec.PctVolatility, rec.ZScore, rec.Remark,
	)
	return errors.Wrapf(err, "update volatility %s", rec.Symbol)
}

func (s *PgSink) AppendListings(ctx context.Context, listings []models.ExchangeListing) error {
	now := time.Now().UTC()
	return s.tm.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		for _, l := range listings {
			_, err := tx.Exec(ctxTx, `
				INSERT INTO exchange_listings (coin_id, name, symbol, market_name, is_futures, fetched_at)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				l.CoinID, l.Name, l.Symbol, l.MarketName, l.IsFutures, now,
			)
			if err != nil {
				return errors.Wrapf(err, "insert listing %s/%s", l.CoinID, l.MarketName)
			}
		}
		return nil
	})
}
