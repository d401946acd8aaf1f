package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pouchesitaly/config"
	"pouchesitaly/logger"
	"pouchesitaly/model"
)

// Kustom is the checkout-session provider client. One instance per
// request, like the rest of the handlers; it carries no state beyond
// config and the HTTP client.
type Kustom struct {
	Config model.KustomConfig
	client *http.Client
}

func NewKustom() *Kustom {
	return &Kustom{
		Config: model.KustomConfig{
			MerchantID:   config.Config("KUSTOM_MERCHANT_ID"),
			SharedSecret: config.Config("KUSTOM_SHARED_SECRET"),
			BaseURL:      config.ConfigOr("KUSTOM_API_URL", "https://api.playground.kustom.co"),
			SiteURL:      config.ConfigOr("SITE_URL", "https://pouchesitaly.com"),
		},
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateOrder opens a checkout session: POST /checkout/v3/orders.
func (k *Kustom) CreateOrder(ctx context.Context, payload model.KustomOrderPayload) (*model.KustomOrder, error) {
	return k.do(ctx, http.MethodPost, "/checkout/v3/orders", &payload)
}

// GetOrder fetches the authoritative session state:
// GET /checkout/v3/orders/{id}[?token=...].
func (k *Kustom) GetOrder(ctx context.Context, orderID, sessionToken string) (*model.KustomOrder, error) {
	path := "/checkout/v3/orders/" + orderID
	if sessionToken != "" {
		path += "?token=" + sessionToken
	}
	return k.do(ctx, http.MethodGet, path, nil)
}

// do is the single place provider traffic flows through, so it is also
// the single place that logs it: path/method/body presence before the
// call, status/duration/shape after.
func (k *Kustom) do(ctx context.Context, method, path string, body any) (*model.KustomOrder, error) {
	var reqBody io.Reader
	hasBody := body != nil
	if hasBody {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal kustom request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, k.Config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build kustom request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(k.Config.MerchantID, k.Config.SharedSecret)

	logger.Info("kustom request", "method", method, "path", path, "has_body", hasBody)
	start := time.Now()

	resp, err := k.client.Do(req)
	if err != nil {
		logger.Error("kustom request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("kustom request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read kustom response: %w", err)
	}

	logger.Info("kustom response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("kustom api error %d: %s", resp.StatusCode, bestEffortBody(raw))
	}

	var order model.KustomOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("malformed kustom response: %w", err)
	}
	order.Raw = json.RawMessage(raw)
	return &order, nil
}

// bestEffortBody compacts a JSON error body for embedding in the error
// message, falling back to the raw text.
func bestEffortBody(raw []byte) string {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if compact, err := json.Marshal(parsed); err == nil {
			return string(compact)
		}
	}
	return string(raw)
}
