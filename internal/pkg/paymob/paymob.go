package paymob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"tour-backoffice/config"
	"tour-backoffice/internal/pkg/httpclient"
	"tour-backoffice/internal/pkg/log"

	"github.com/goccy/go-json"
)

const (
	mockAuthToken  = "mock_auth_token"
	mockPaymentKey = "mock_payment_key"
	mockIframeID   = "MOCK_IFRAME"

	paymentKeyExpiration = 3600
)

type Customer struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// Client talks to the Paymob accept API. Every step falls back to a
// synthetic value when the credentials it needs are not configured.
type Client struct {
	cfg  *config.PaymobConfig
	http httpclient.Doer
	log  log.Logger
}

func New(cfg *config.PaymobConfig, doer httpclient.Doer, log log.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: doer,
		log:  log,
	}
}

// Setup runs the whole flow: authenticate, register the order, obtain a
// payment key and build the iframe URL.
func (c *Client) Setup(ctx context.Context, amountCents int64, currency string, customer Customer) (string, error) {
	token, err := c.AuthToken(ctx)
	if err != nil {
		return "", err
	}
	orderID, err := c.CreateOrder(ctx, token, amountCents, currency)
	if err != nil {
		return "", err
	}
	key, err := c.PaymentKey(ctx, token, orderID, amountCents, currency, customer)
	if err != nil {
		return "", err
	}
	return c.IframeURL(key), nil
}

func (c *Client) AuthToken(ctx context.Context) (string, error) {
	if c.cfg.APIKey == "" {
		c.log.Warn(ctx, "PAYMOB_API_KEY is missing, using mock auth token")
		return mockAuthToken, nil
	}

	var resp struct {
		Token string `json:"token"`
	}
	err := c.post(ctx, "/auth/tokens", map[string]any{"api_key": c.cfg.APIKey}, &resp)
	if err != nil {
		return "", fmt.Errorf("paymob auth: %w", err)
	}
	return resp.Token, nil
}

func (c *Client) CreateOrder(ctx context.Context, authToken string, amountCents int64, currency string) (int64, error) {
	if c.cfg.APIKey == "" {
		return rand.Int63n(1000000), nil
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	err := c.post(ctx, "/ecommerce/orders", map[string]any{
		"auth_token":      authToken,
		"delivery_needed": "false",
		"amount_cents":    amountCents,
		"currency":        currency,
		"items":           []any{},
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("paymob order: %w", err)
	}
	return resp.ID, nil
}

func (c *Client) PaymentKey(ctx context.Context, authToken string, orderID, amountCents int64, currency string, customer Customer) (string, error) {
	if c.cfg.APIKey == "" || c.cfg.IntegrationID == "" {
		return mockPaymentKey, nil
	}

	var resp struct {
		Token string `json:"token"`
	}
	err := c.post(ctx, "/acceptance/payment_keys", map[string]any{
		"auth_token":     authToken,
		"amount_cents":   amountCents,
		"expiration":     paymentKeyExpiration,
		"order_id":       orderID,
		"billing_data":   billingData(customer),
		"currency":       currency,
		"integration_id": c.cfg.IntegrationID,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("paymob payment key: %w", err)
	}
	return resp.Token, nil
}

func (c *Client) IframeURL(paymentKey string) string {
	iframeID := c.cfg.IframeID
	if iframeID == "" {
		iframeID = mockIframeID
	}
	return fmt.Sprintf("%s/acceptance/iframes/%s?payment_token=%s", c.cfg.BaseURL, iframeID, paymentKey)
}

// billingData fills the address fields Paymob requires but the back office
// does not collect.
func billingData(customer Customer) map[string]string {
	return map[string]string{
		"apartment":       "NA",
		"email":           customer.Email,
		"floor":           "NA",
		"first_name":      customer.FirstName,
		"street":          "NA",
		"building":        "NA",
		"phone_number":    customer.Phone,
		"shipping_method": "NA",
		"postal_code":     "NA",
		"city":            "NA",
		"country":         "NA",
		"last_name":       customer.LastName,
		"state":           "NA",
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

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
