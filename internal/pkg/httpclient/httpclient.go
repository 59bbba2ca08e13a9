package httpclient

import (
	"net/http"

	"tour-backoffice/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// Doer is the part of an HTTP client the gateway clients use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitCircuitBreaker builds the breaker named by breakerType. Unknown types
// fall back to a consecutive-failure breaker.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case "rate":
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

// InitHttpClient wraps a plain client with cb. Calls fail fast with
// circuit.ErrBreakerOpen while the breaker is tripped.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, &http.Client{Timeout: cfg.Timeout})
}
