package service

import (
	"net/http"
	"time"
)

const baseURL = "https://api.bybit.com"

// Client — публичные маркет-данные фьючерсов Bybit, без авторизации.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}
