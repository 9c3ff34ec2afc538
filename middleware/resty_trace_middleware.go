package middleware

import (
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// UpstreamTraceMiddleware runs in the resty OnAfterResponse chain and records
// every stock-service response for diagnosis. Nothing durable is kept.
func UpstreamTraceMiddleware(c *resty.Client, resp *resty.Response) error {
	log.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("upstream response")
	return nil
}
