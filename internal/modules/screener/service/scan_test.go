package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"accum_scanner/internal/models"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeRating struct {
	pages     map[int][]models.MarketRecord
	failPages map[int]bool
	calls     []int
}

func (f *fakeRating) Listings(_ context.Context, page int) ([]models.MarketRecord, error) {
	f.calls = append(f.calls, page)
	if f.failPages[page] {
		return nil, fmt.Errorf("boom")
	}
	return f.pages[page], nil
}

type fakeCatalog struct {
	instruments []models.FuturesInstrument
	err         error
}

func (f *fakeCatalog) Catalog(context.Context) ([]models.FuturesInstrument, error) {
	return f.instruments, f.err
}

type fakeScanSink struct {
	cycleDay string
	byTier   map[models.Tier][]models.ClassifiedInstrument
}

func (f *fakeScanSink) WriteScan(_ context.Context, cycleDay string, byTier map[models.Tier][]models.ClassifiedInstrument) error {
	f.cycleDay = cycleDay
	f.byTier = byTier
	return nil
}

func (f *fakeScanSink) ScanSymbols(context.Context, string) ([]sink.ScanSymbol, error) {
	return nil, nil
}

func (f *fakeScanSink) UpdateVolatility(context.Context, string, models.VolatilityRecord) error {
	return nil
}

func (f *fakeScanSink) AppendListings(context.Context, []models.ExchangeListing) error {
	return nil
}

type silentNotifier struct{ msgs []string }

func (n *silentNotifier) Send(msg string)             { n.msgs = append(n.msgs, msg) }
func (n *silentNotifier) Sendf(f string, args ...any) { n.Send(fmt.Sprintf(f, args...)) }

func liquidRecord(symbol, name string, cap float64) models.MarketRecord {
	return models.MarketRecord{
		Symbol:    symbol,
		Name:      name,
		Price:     1,
		Volume24h: cap * 0.05,
		MarketCap: cap,
	}
}

// Упавшая страница рейтинга пропускается, остальные доезжают до приёмника.
func TestScannerRunSkipsFailedPage(t *testing.T) {
	rating := &fakeRating{
		pages: map[int][]models.MarketRecord{
			1: {liquidRecord("btc", "Bitcoin", 1_500_000_000_000)},
			3: {liquidRecord("shib", "Shiba Inu", 50_000_000)},
		},
		failPages: map[int]bool{2: true},
	}
	catalog := &fakeCatalog{instruments: []models.FuturesInstrument{
		{RawSymbol: "1000SHIBUSDT", BaseCoin: "1000SHIB", QuoteCoin: "USDT", LastPrice: 0.012},
		{RawSymbol: "BTCUSDT", BaseCoin: "BTC", QuoteCoin: "USDT", LastPrice: 65_000},
	}}
	out := &fakeScanSink{}
	n := &silentNotifier{}

	s := NewScanner(rating, catalog, out, n, 3, 0)
	s.sleep = func(time.Duration) {}

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []int{1, 2, 3}, rating.calls)
	require.NotNil(t, out.byTier)

	mega := out.byTier[models.TierMega]
	require.Len(t, mega, 1)
	assert.Equal(t, "BTCUSDT", mega[0].Match.FuturesSymbol)

	small := out.byTier[models.TierSmall]
	require.Len(t, small, 1)
	assert.Equal(t, "1000SHIBUSDT", small[0].Match.FuturesSymbol)
	assert.Equal(t, 1000.0, small[0].Match.Divisor)

	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], out.cycleDay)
}

// Недоступный каталог фьючерсов — фатально для прохода.
func TestScannerRunCatalogError(t *testing.T) {
	rating := &fakeRating{}
	catalog := &fakeCatalog{err: fmt.Errorf("upstream down")}
	s := NewScanner(rating, catalog, &fakeScanSink{}, &silentNotifier{}, 3, 0)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, rating.calls)
}

// Стейблы и слишком мелкая капа не проходят гейт и не пишутся.
func TestScannerRunFiltersOutOfScope(t *testing.T) {
	rating := &fakeRating{
		pages: map[int][]models.MarketRecord{
			1: {
				liquidRecord("usdt", "Tether", 100_000_000_000),
				liquidRecord("dust", "Dust", 5_000_000),
			},
		},
	}
	out := &fakeScanSink{}
	s := NewScanner(rating, &fakeCatalog{}, out, &silentNotifier{}, 1, 0)
	s.sleep = func(time.Duration) {}

	require.NoError(t, s.Run(context.Background()))
	assert.Empty(t, out.byTier)
}
