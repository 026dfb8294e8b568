package client

import (
	"context"
	"time"

	"github.com/a7coder/ETF-Analyze/middleware"
	"github.com/a7coder/ETF-Analyze/model"

	"github.com/go-resty/resty/v2"
)

const (
	tickertapeBaseURL = "https://api.tickertape.in"
	screenerPath      = "/screener/query"
)

type TickertapeClient struct {
	RestyClient *resty.Client
}

func NewTickertapeClient() *TickertapeClient {
	return NewTickertapeClientWithBase(tickertapeBaseURL)
}

// NewTickertapeClientWithBase exists so tests can point the client at
// a local server.
func NewTickertapeClientWithBase(baseURL string) *TickertapeClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "Mozilla/5.0",
		})

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &TickertapeClient{RestyClient: c}
}

// Query runs one screener page request.
func (c *TickertapeClient) Query(ctx context.Context, payload model.ScreenerRequest) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(screenerPath)
}
