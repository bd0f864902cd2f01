package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const sourceBaseURL = "https://api.coingecko.com/api/v3"

// CoinPageSize — до 100 монет на страницу у источника.
const CoinPageSize = 100

type CoinSummary struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Ticker — один рынок монеты. HasIncentive используется выше как
// неточный прокси «фьючерс или спот».
type Ticker struct {
	MarketName   string
	HasIncentive bool
}

// Source — клиент агрегатора листингов, без авторизации.
type Source struct {
	http *http.Client
}

func NewSource() *Source {
	return &Source{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// CoinPage — одна страница списка монет (1-based).
func (s *Source) CoinPage(ctx context.Context, page int) ([]CoinSummary, error) {
	u := fmt.Sprintf(
		"%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=%d",
		sourceBaseURL, CoinPageSize, page,
	)
	var coins []CoinSummary
	if err := s.getJSON(ctx, u, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// Tickers — рынки одной монеты по её id.
func (s *Source) Tickers(ctx context.Context, coinID string) ([]Ticker, error) {
	u := fmt.Sprintf("%s/coins/%s/tickers", sourceBaseURL, url.PathEscape(coinID))

	var payload struct {
		Tickers []struct {
			Market struct {
				Name                string `json:"name"`
				HasTradingIncentive bool   `json:"has_trading_incentive"`
			} `json:"market"`
		} `json:"tickers"`
	}
	if err := s.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	out := make([]Ticker, 0, len(payload.Tickers))
	for _, t := range payload.Tickers {
		out = append(out, Ticker{
			MarketName:   t.Market.Name,
			HasIncentive: t.Market.HasTradingIncentive,
		})
	}
	return out, nil
}

func (s *Source) getJSON(ctx context.Context, u string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
