package service

import (
	"testing"

	"accum_scanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.FuturesInstrument {
	return []models.FuturesInstrument{
		{RawSymbol: "1000SHIBUSDT", BaseCoin: "1000SHIB", QuoteCoin: "USDT", LastPrice: 0.012},
		{RawSymbol: "100XUSDT", BaseCoin: "100X", QuoteCoin: "USDT", LastPrice: 3.5},
		{RawSymbol: "BTCUSDT", BaseCoin: "BTC", QuoteCoin: "USDT", LastPrice: 114_000},
		{RawSymbol: "PEPEUSDT", BaseCoin: "PEPE", QuoteCoin: "USDT", LastPrice: 0.0000071},
	}
}

func TestMatchMultiplierPrefix(t *testing.T) {
	m := NewMatcher(testCatalog())

	res := m.Match("SHIB", "Shiba Inu")
	require.True(t, res.Available)
	assert.Equal(t, "1000SHIBUSDT", res.FuturesSymbol)
	assert.Equal(t, 1000.0, res.Divisor)
	assert.InDelta(t, 0.000012, res.Price, 1e-12)
}

func TestMatchNoPrefix(t *testing.T) {
	m := NewMatcher(testCatalog())

	res := m.Match("BTC", "Bitcoin")
	require.True(t, res.Available)
	assert.Equal(t, "BTCUSDT", res.FuturesSymbol)
	assert.Equal(t, 1.0, res.Divisor)
	assert.Equal(t, 114_000.0, res.Price)
}

func TestMatchByNameToken(t *testing.T) {
	m := NewMatcher(testCatalog())

	// символ не совпадает, матчит первый токен имени
	res := m.Match("PEPECOIN", "Pepe Coin")
	require.True(t, res.Available)
	assert.Equal(t, "PEPEUSDT", res.FuturesSymbol)
	assert.Equal(t, 1.0, res.Divisor)
}

func TestMatchFallbackExactSymbol(t *testing.T) {
	m := NewMatcher(testCatalog())

	// "100X": префикс срезается в "x", что не матчит ни символ, ни имя;
	// срабатывает запасной точный матч по символу с делителем 1
	res := m.Match("100x", "100x Project")
	require.True(t, res.Available)
	assert.Equal(t, "100XUSDT", res.FuturesSymbol)
	assert.Equal(t, 1.0, res.Divisor)
	assert.Equal(t, 3.5, res.Price)
}

func TestMatchUnavailableSentinel(t *testing.T) {
	m := NewMatcher(testCatalog())

	res := m.Match("DOGE", "Dogecoin")
	assert.False(t, res.Available)
	assert.Equal(t, models.UnavailableSymbol, res.FuturesSymbol)
	assert.Equal(t, models.UnavailableSymbol, res.BaseCoin)
	assert.Equal(t, 0.0, res.Price)
	assert.Equal(t, 1.0, res.Divisor)
}
