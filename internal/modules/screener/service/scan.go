package service

import (
	"context"
	"fmt"
	"time"

	"accum_scanner/internal/models"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/internal/notify"
	"accum_scanner/pkg/logger"

	"github.com/opentracing/opentracing-go"
)

// RatingSource отдаёт одну страницу рейтинга по капитализации.
type RatingSource interface {
	Listings(ctx context.Context, page int) ([]models.MarketRecord, error)
}

// FuturesCatalog отдаёт текущий каталог торгуемых перпов.
type FuturesCatalog interface {
	Catalog(ctx context.Context) ([]models.FuturesInstrument, error)
}

// Scanner — один полный проход по рейтингу: гейт ликвидности, матчинг
// с фьючерсным каталогом, классификация аккумуляции, проверка vol/cap,
// запись по тирам в приёмник. Всё строго последовательно.
type Scanner struct {
	rating   RatingSource
	futures  FuturesCatalog
	sink     sink.Sink
	notifier notify.Notifier

	pages  int
	pacing time.Duration
	sleep  func(time.Duration)
}

func NewScanner(rating RatingSource, futures FuturesCatalog, out sink.Sink, n notify.Notifier, pages int, pacing time.Duration) *Scanner {
	return &Scanner{
		rating:   rating,
		futures:  futures,
		sink:     out,
		notifier: n,
		pages:    pages,
		pacing:   pacing,
		sleep:    time.Sleep,
	}
}

// Run выполняет цикл сканирования за текущий UTC-день.
// Упавшая страница рейтинга логируется и пропускается, цикл живёт дальше.
func (s *Scanner) Run(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "scan")
	defer span.Finish()

	catalog, err := s.futures.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("futures catalog: %w", err)
	}
	matcher := NewMatcher(catalog)

	cycleDay := time.Now().UTC().Format("2006-01-02")
	byTier := make(map[models.Tier][]models.ClassifiedInstrument)
	scanned, kept := 0, 0

	for page := 1; page <= s.pages; page++ {
		if page > 1 {
			// пейсинг под rate limit источника
			s.sleep(s.pacing)
		}

		records, err := s.rating.Listings(ctx, page)
		if err != nil {
			logger.Error("listings page %d: %v", page, err)
			continue
		}

		for _, rec := range records {
			scanned++
			if !InScope(rec) {
				continue
			}

			match := matcher.Match(rec.Symbol, rec.Name)
			accumulating, pattern := Classify(rec)

			ci := models.ClassifiedInstrument{
				Market:         rec,
				Match:          match,
				Tier:           models.TierFor(rec.MarketCap),
				IsAccumulating: accumulating,
				Pattern:        pattern,
				VolCap:         CheckVolCap(rec.Volume24h, rec.MarketCap),
			}
			byTier[ci.Tier] = append(byTier[ci.Tier], ci)
			kept++
		}
	}

	if err := s.sink.WriteScan(ctx, cycleDay, byTier); err != nil {
		return fmt.Errorf("write scan results: %w", err)
	}

	accumulating := 0
	for _, list := range byTier {
		for _, ci := range list {
			if ci.IsAccumulating {
				accumulating++
			}
		}
	}
	logger.Info("scan %s: %d scanned, %d in scope, %d accumulating", cycleDay, scanned, kept, accumulating)
	s.notifier.Sendf("scan %s: %d/%d in scope, %d accumulating", cycleDay, kept, scanned, accumulating)
	return nil
}
