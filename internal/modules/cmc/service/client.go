package service

import (
	"fmt"
	"net/http"
	"time"
)

// Client — клиент рейтинга по капитализации (CoinMarketCap pro API).
type Client struct {
	http   *http.Client
	apiKey string
}

// NewClient. Отсутствие ключа — фатальная конфигурационная ошибка,
// без него источник не отвечает вообще.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("CMC API key is required (CMC_API_KEY)")
	}
	return &Client{
		http:   &http.Client{Timeout: 30 * time.Second},
		apiKey: apiKey,
	}, nil
}
