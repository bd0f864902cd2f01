package service

import (
	"context"
	"fmt"
	"time"

	"accum_scanner/internal/models"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/pkg/logger"
)

// State — положение краулера. Page за пределами totalPages означает
// «всё пройдено»; отдельного флага «ещё не стартовал» нет: отсутствие
// курсора читается как страница 1.
type State struct {
	Page int
}

func (s State) Complete(totalPages int) bool { return s.Page > totalPages }

// CatalogSource — постраничный список монет и рынки каждой монеты.
type CatalogSource interface {
	CoinPage(ctx context.Context, page int) ([]CoinSummary, error)
	Tickers(ctx context.Context, coinID string) ([]Ticker, error)
}

// Crawler — длинный постраничный обход агрегатора листингов. Обход не
// влезает в один вызов: внешний шедулер перезапускает бинарь, а прогресс
// живёт только в durable-курсоре. Ничего в памяти между вызовами не
// переживает.
type Crawler struct {
	source CatalogSource
	cursor *Cursor
	sink   sink.Sink

	// прокси «фьючерсный рынок»; заменяем, не трогая сам обход
	isFutures func(Ticker) bool

	totalPages int
	budget     time.Duration
	pacing     time.Duration
	now        func() time.Time
	sleep      func(time.Duration)
}

func NewCrawler(source CatalogSource, cursor *Cursor, out sink.Sink, totalPages int, budget, pacing time.Duration) *Crawler {
	return &Crawler{
		source:     source,
		cursor:     cursor,
		sink:       out,
		isFutures:  func(t Ticker) bool { return t.HasIncentive },
		totalPages: totalPages,
		budget:     budget,
		pacing:     pacing,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Step обрабатывает ровно одну страницу и возвращает следующее
// состояние. Ошибка источника не останавливает обход: страница
// пропускается, состояние всё равно продвигается.
func (c *Crawler) Step(ctx context.Context, st State) (State, error) {
	next := State{Page: st.Page + 1}

	coins, err := c.source.CoinPage(ctx, st.Page)
	if err != nil {
		return next, fmt.Errorf("coin page %d: %w", st.Page, err)
	}

	var rows []models.ExchangeListing
	for _, coin := range coins {
		c.sleep(c.pacing)
		tickers, err := c.source.Tickers(ctx, coin.ID)
		if err != nil {
			logger.Error("tickers %s: %v", coin.ID, err)
			continue
		}
		for _, t := range tickers {
			rows = append(rows, models.ExchangeListing{
				CoinID:     coin.ID,
				Name:       coin.Name,
				Symbol:     coin.Symbol,
				MarketName: t.MarketName,
				IsFutures:  c.isFutures(t),
			})
		}
	}

	if len(rows) > 0 {
		if err := c.sink.AppendListings(ctx, rows); err != nil {
			return next, fmt.Errorf("append listings page %d: %w", st.Page, err)
		}
	}
	return next, nil
}

// Run гоняет Step, пока не кончатся страницы или бюджет времени.
// Исчерпанный бюджет — штатный ранний выход: курсор сохранён, следующий
// вызов продолжит с того же места.
func (c *Crawler) Run(ctx context.Context) error {
	deadline := c.now().Add(c.budget)

	page, err := c.cursor.Get(ctx)
	if err != nil {
		return err
	}
	st := State{Page: page}
	if st.Complete(c.totalPages) {
		logger.Info("listings crawl already complete (cursor %d)", st.Page)
		return nil
	}

	for !st.Complete(c.totalPages) {
		if !c.now().Before(deadline) {
			if err := c.cursor.Set(ctx, st.Page); err != nil {
				return err
			}
			logger.Info("budget exhausted, resume at page %d", st.Page)
			return nil
		}

		next, err := c.Step(ctx, st)
		if err != nil {
			logger.Error("%v", err)
		}
		st = next
	}

	// totalPages+1 — конвенция «обход завершён»
	if err := c.cursor.Set(ctx, c.totalPages+1); err != nil {
		return err
	}
	logger.Info("listings crawl complete: %d pages", c.totalPages)
	return nil
}

// Reset — явный сброс: следующий Run начнёт с первой страницы.
func (c *Crawler) Reset(ctx context.Context) error {
	return c.cursor.Reset(ctx)
}
