package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"accum_scanner/internal/models"
)

// Kline тянет последние days дневных баров по символу.
// Bybit отдаёт список от новых к старым, здесь разворачиваем в
// хронологический порядок: series[len-1] — сегодняшний (возможно
// незавершённый) бар.
func (c *Client) Kline(ctx context.Context, symbol string, days int) (models.CandleSeries, error) {
	path := fmt.Sprintf(
		"/v5/market/kline?category=linear&symbol=%s&interval=D&limit=%d",
		url.QueryEscape(symbol), days,
	)

	var payload struct {
		List [][]string `json:"list"`
	}
	if err := c.getResult(ctx, path, &payload); err != nil {
		return models.CandleSeries{}, err
	}

	n := len(payload.List)
	series := models.CandleSeries{
		Open:   make([]float64, 0, n),
		High:   make([]float64, 0, n),
		Low:    make([]float64, 0, n),
		Close:  make([]float64, 0, n),
		Volume: make([]float64, 0, n),
		Time:   make([]int64, 0, n),
	}

	for i := n - 1; i >= 0; i-- {
		row := payload.List[i]
		// [startTime, open, high, low, close, volume, turnover]
		if len(row) < 6 {
			return models.CandleSeries{}, fmt.Errorf("kline row has %d fields", len(row))
		}
		ts, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return models.CandleSeries{}, fmt.Errorf("parse time %q: %w", row[0], err)
		}
		vals := make([]float64, 5)
		for j := 1; j <= 5; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return models.CandleSeries{}, fmt.Errorf("parse kline field %d %q: %w", j, row[j], err)
			}
			vals[j-1] = v
		}
		series.Time = append(series.Time, ts/1000) // мс -> сек
		series.Open = append(series.Open, vals[0])
		series.High = append(series.High, vals[1])
		series.Low = append(series.Low, vals[2])
		series.Close = append(series.Close, vals[3])
		series.Volume = append(series.Volume, vals[4])
	}
	return series, nil
}
