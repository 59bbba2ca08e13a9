package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tour-backoffice/config"
	"tour-backoffice/internal/pkg/httpclient"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitHttpClientTripsAfterFailures(t *testing.T) {
	cfg := &config.HttpClientConfig{Timeout: 100 * time.Millisecond, Threshold: 2}
	cb := httpclient.InitCircuitBreaker(cfg, "consecutive")
	client := httpclient.InitHttpClient(cfg, cb)

	// a closed port fails every request
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)
		_, err = client.Do(req)
		assert.Error(t, err)
	}

	assert.True(t, cb.Tripped())
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	_, err := client.Do(req)
	assert.ErrorIs(t, err, circuit.ErrBreakerOpen)
}

func TestInitHttpClientPassesResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	cfg := &config.HttpClientConfig{Timeout: time.Second, Threshold: 5}
	var doer httpclient.Doer = httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, "threshold"))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := doer.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
