package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pouchesitaly/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKustomGetOrderSendsTokenAndAuth(t *testing.T) {
	var gotPath, gotToken string
	var gotUser, gotPass string
	mockKustom(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		gotUser, gotPass, _ = r.BasicAuth()
		json.NewEncoder(w).Encode(map[string]any{"order_id": "ko_1", "status": "captured"})
	})

	order, err := NewKustom().GetOrder(context.Background(), "ko_1", "tok_xyz")
	require.NoError(t, err)

	assert.Equal(t, "/checkout/v3/orders/ko_1", gotPath)
	assert.Equal(t, "tok_xyz", gotToken)
	assert.Equal(t, "PK12345", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "captured", order.Status)
	assert.JSONEq(t, `{"order_id":"ko_1","status":"captured"}`, string(order.Raw))
}

func TestKustomErrorEmbedsStatusAndBody(t *testing.T) {
	mockKustom(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error_code": "UNAUTHORIZED", "error_messages": ["bad credentials"]}`))
	})

	_, err := NewKustom().GetOrder(context.Background(), "ko_1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kustom api error 403")
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestKustomErrorPlainTextBody(t *testing.T) {
	mockKustom(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusGatewayTimeout)
	})

	_, err := NewKustom().GetOrder(context.Background(), "ko_1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kustom api error 504")
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestKustomMalformedResponse(t *testing.T) {
	mockKustom(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := NewKustom().GetOrder(context.Background(), "ko_1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed kustom response")
}

func TestKustomCreateOrderPostsPayload(t *testing.T) {
	var gotMethod string
	var gotBody model.KustomOrderPayload
	mockKustom(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"order_id":     "ko_new",
			"status":       "checkout_incomplete",
			"html_snippet": "<div></div>",
		})
	})

	payload := model.KustomOrderPayload{
		PurchaseCountry:  "IT",
		PurchaseCurrency: "EUR",
		OrderAmount:      900,
	}
	order, err := NewKustom().CreateOrder(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, int64(900), gotBody.OrderAmount)
	assert.Equal(t, "ko_new", order.OrderID)
	assert.NotEmpty(t, order.HTMLSnippet)
}

func TestKustomContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	t.Setenv("KUSTOM_API_URL", srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewKustom().GetOrder(ctx, "ko_1", "")
	assert.Error(t, err)
}
