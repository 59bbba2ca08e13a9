package paypal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tour-backoffice/config"
	"tour-backoffice/internal/pkg/httpclient"
	"tour-backoffice/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const mockClientToken = "mock_client_token"

type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client wraps the PayPal REST API. Without client credentials it returns
// synthetic tokens and orders.
type Client struct {
	cfg  *config.PaypalConfig
	http httpclient.Doer
	log  log.Logger
}

func New(cfg *config.PaypalConfig, doer httpclient.Doer, log log.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: doer,
		log:  log,
	}
}

func (c *Client) configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// ClientToken returns the token the browser SDK needs to render card
// fields.
func (c *Client) ClientToken(ctx context.Context) (string, error) {
	if !c.configured() {
		c.log.Warn(ctx, "PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET is missing, using mock client token")
		return mockClientToken, nil
	}

	var resp struct {
		ClientToken string `json:"client_token"`
	}
	if err := c.call(ctx, http.MethodPost, "/v1/identity/generate-token", nil, &resp); err != nil {
		return "", fmt.Errorf("paypal client token: %w", err)
	}
	return resp.ClientToken, nil
}

// CreateOrder registers an order for amount, a decimal string such as
// "150.00".
func (c *Client) CreateOrder(ctx context.Context, intent, amount, currency string) (Order, error) {
	if intent == "" {
		intent = "CAPTURE"
	}
	if !c.configured() {
		return Order{ID: "MOCK-" + strings.ToUpper(uuid.NewString()), Status: "CREATED"}, nil
	}

	body := map[string]any{
		"intent": intent,
		"purchase_units": []map[string]any{{
			"amount": map[string]string{
				"currency_code": currency,
				"value":         amount,
			},
		}},
	}
	var order Order
	if err := c.call(ctx, http.MethodPost, "/v2/checkout/orders", body, &order); err != nil {
		return Order{}, fmt.Errorf("paypal create order: %w", err)
	}
	return order, nil
}

func (c *Client) CaptureOrder(ctx context.Context, orderID string) (Order, error) {
	if !c.configured() {
		return Order{ID: orderID, Status: "COMPLETED"}, nil
	}

	var order Order
	path := "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	if err := c.call(ctx, http.MethodPost, path, map[string]any{}, &order); err != nil {
		return Order{}, fmt.Errorf("paypal capture order: %w", err)
	}
	return order, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("access token: %w", err)
	}
	return resp.AccessToken, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}
	return json.Unmarshal(raw, out)
}
