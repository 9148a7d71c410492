package billinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

const defaultCheckoutTimeout = 15 * time.Second

// HTTPCheckoutProvider implements billing.CheckoutProvider over the payment
// provider's REST API
type HTTPCheckoutProvider struct {
	httpClient  *http.Client
	baseURL     string
	secretKey   string
	frontendURL string
}

// NewHTTPCheckoutProvider creates a checkout provider against the given API base URL
func NewHTTPCheckoutProvider(baseURL, secretKey, frontendURL string) *HTTPCheckoutProvider {
	return &HTTPCheckoutProvider{
		httpClient:  &http.Client{Timeout: defaultCheckoutTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		secretKey:   secretKey,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// CreateCheckoutSession starts a subscription checkout and returns the session ID
func (p *HTTPCheckoutProvider) CreateCheckoutSession(ctx context.Context, priceID string, userID kernel.UserID) (string, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", p.frontendURL+"/dashboard?session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", p.frontendURL+"/pricing")
	form.Set("client_reference_id", userID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read checkout response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("checkout api returned status %d: %s", resp.StatusCode, string(body))
	}

	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("decode checkout response: %w", err)
	}
	if session.ID == "" {
		return "", fmt.Errorf("checkout api returned no session id")
	}

	return session.ID, nil
}
