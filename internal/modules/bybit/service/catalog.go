package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"accum_scanner/internal/models"
)

type instrumentRow struct {
	Symbol    string `json:"symbol"`
	BaseCoin  string `json:"baseCoin"`
	QuoteCoin string `json:"quoteCoin"`
	Status    string `json:"status"`
}

type tickerRow struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
}

// Catalog джойнит instruments-info и tickers по символу и отдаёт
// торгуемые USDT-перпы, отсортированные по RawSymbol. Фиксированный
// порядок делает first-match-wins матчера детерминированным.
func (c *Client) Catalog(ctx context.Context) ([]models.FuturesInstrument, error) {
	instruments, err := c.instrumentsInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("instruments-info: %w", err)
	}
	tickers, err := c.tickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("tickers: %w", err)
	}

	lastBySymbol := make(map[string]float64, len(tickers))
	for _, t := range tickers {
		px, err := strconv.ParseFloat(t.LastPrice, 64)
		if err != nil || px <= 0 {
			continue
		}
		lastBySymbol[t.Symbol] = px
	}

	out := make([]models.FuturesInstrument, 0, len(instruments))
	for _, in := range instruments {
		if in.Status != "" && in.Status != "Trading" {
			continue
		}
		px, ok := lastBySymbol[in.Symbol]
		if !ok {
			continue // без тикера цена неизвестна, инструмент бесполезен
		}
		out = append(out, models.FuturesInstrument{
			RawSymbol: in.Symbol,
			BaseCoin:  strings.ToUpper(in.BaseCoin),
			QuoteCoin: in.QuoteCoin,
			LastPrice: px,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RawSymbol < out[j].RawSymbol })
	return out, nil
}

func (c *Client) instrumentsInfo(ctx context.Context) ([]instrumentRow, error) {
	var payload struct {
		List []instrumentRow `json:"list"`
	}
	if err := c.getResult(ctx, "/v5/market/instruments-info?category=linear&limit=1000", &payload); err != nil {
		return nil, err
	}
	return payload.List, nil
}

func (c *Client) tickers(ctx context.Context) ([]tickerRow, error) {
	var payload struct {
		List []tickerRow `json:"list"`
	}
	if err := c.getResult(ctx, "/v5/market/tickers?category=linear", &payload); err != nil {
		return nil, err
	}
	return payload.List, nil
}

// getResult — общий GET с разбором конверта bybit v5.
func (c *Client) getResult(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var envelope struct {
		RetCode int             `json:"retCode"`
		RetMsg  string          `json:"retMsg"`
		Result  json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if envelope.RetCode != 0 {
		return fmt.Errorf("bybit error %d: %s", envelope.RetCode, envelope.RetMsg)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}
