package candlecache

import (
	"context"
	"testing"

	"accum_scanner/internal/models"
	"accum_scanner/internal/modules/kvstore"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(n int, base float64) models.CandleSeries {
	var s models.CandleSeries
	for i := 0; i < n; i++ {
		px := base + float64(i)
		s.Open = append(s.Open, px)
		s.High = append(s.High, px+1)
		s.Low = append(s.Low, px-1)
		s.Close = append(s.Close, px+0.5)
		s.Volume = append(s.Volume, float64(1000*i))
		s.Time = append(s.Time, int64(i)*86_400)
	}
	return s
}

func testPayload() map[string]models.CandleSeries {
	return map[string]models.CandleSeries{
		"BTCUSDT":      testSeries(10, 114_000),
		"ETHUSDT":      testSeries(10, 4_000),
		"1000SHIBUSDT": testSeries(10, 0.012),
	}
}

func TestRoundTripMultipleChunks(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory(1 << 20)
	cache, err := New(store, "test:candles", 100)
	require.NoError(t, err)

	payload := testPayload()
	require.NoError(t, cache.Put(ctx, payload))

	// payload заведомо больше одного чанка в 100 байт
	raw, err := sonic.Marshal(payload)
	require.NoError(t, err)
	require.Greater(t, len(raw), 100)

	m, ok, err := cache.readMeta(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, (len(raw)+99)/100, m.Count, "chunk count is ceil(len/chunkSize)")

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestGetAbsentIsEmpty(t *testing.T) {
	store := kvstore.NewMemory(1 << 20)
	cache, err := New(store, "test:candles", 100)
	require.NoError(t, err)

	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPutReplacesGenerationWithoutStaleKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory(1 << 20)
	cache, err := New(store, "test:candles", 100)
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, testPayload()))
	second := map[string]models.CandleSeries{"SOLUSDT": testSeries(9, 200)}
	require.NoError(t, cache.Put(ctx, second))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	// в сторе только чанки живого поколения плюс мета
	m, ok, err := cache.readMeta(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.Count+1, store.Len())
}

func TestDrop(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory(1 << 20)
	cache, err := New(store, "test:candles", 100)
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, testPayload()))
	require.NoError(t, cache.Drop(ctx))
	assert.Equal(t, 0, store.Len())

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewRejectsOversizedChunk(t *testing.T) {
	store := kvstore.NewMemory(256)
	_, err := New(store, "test:candles", 512)
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	chunks := split(make([]byte, 250), 100)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[2], 50)

	assert.Len(t, split(make([]byte, 100), 100), 1)
	assert.Len(t, split(nil, 100), 1)
}
