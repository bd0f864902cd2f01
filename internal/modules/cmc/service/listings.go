package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"accum_scanner/internal/models"
)

// PageSize — фиксированный размер страницы рейтинга.
const PageSize = 100

// Listings тянет одну страницу рейтинга по капитализации (1-based).
func (c *Client) Listings(ctx context.Context, page int) ([]models.MarketRecord, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	start := (page-1)*PageSize + 1

	url := fmt.Sprintf(
		"https://pro-api.coinmarketcap.com/v1/cryptocurrency/listings/latest?start=%d&limit=%d&convert=USD",
		start, PageSize,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Status struct {
			ErrorCode    int    `json:"error_code"`
			ErrorMessage string `json:"error_message"`
		} `json:"status"`
		Data []struct {
			Symbol string `json:"symbol"`
			Name   string `json:"name"`
			Quote  struct {
				USD struct {
					Price            float64 `json:"price"`
					Volume24h        float64 `json:"volume_24h"`
					MarketCap        float64 `json:"market_cap"`
					PercentChange24h float64 `json:"percent_change_24h"`
					PercentChange7d  float64 `json:"percent_change_7d"`
					PercentChange30d float64 `json:"percent_change_30d"`
				} `json:"USD"`
			} `json:"quote"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if payload.Status.ErrorCode != 0 {
		return nil, fmt.Errorf("cmc error %d: %s", payload.Status.ErrorCode, payload.Status.ErrorMessage)
	}

	records := make([]models.MarketRecord, 0, len(payload.Data))
	for _, d := range payload.Data {
		records = append(records, models.MarketRecord{
			Symbol:       d.Symbol,
			Name:         d.Name,
			Price:        d.Quote.USD.Price,
			Volume24h:    d.Quote.USD.Volume24h,
			MarketCap:    d.Quote.USD.MarketCap,
			PctChange24h: d.Quote.USD.PercentChange24h,
			PctChange7d:  d.Quote.USD.PercentChange7d,
			PctChange30d: d.Quote.USD.PercentChange30d,
		})
	}
	return records, nil
}
