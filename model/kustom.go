package model

import "encoding/json"

// KustomConfig holds the checkout-session provider credentials.
type KustomConfig struct {
	MerchantID   string
	SharedSecret string
	BaseURL      string
	SiteURL      string // base for merchant callback URLs
}

// KustomOrderPayload is the create-order request body for
// POST /checkout/v3/orders.
type KustomOrderPayload struct {
	PurchaseCountry  string             `json:"purchase_country"`
	PurchaseCurrency string             `json:"purchase_currency"`
	Locale           string             `json:"locale"`
	OrderAmount      int64              `json:"order_amount"` // minor units
	OrderTaxAmount   int64              `json:"order_tax_amount"`
	OrderLines       []KustomOrderLine  `json:"order_lines"`
	MerchantUrls     KustomMerchantUrls `json:"merchant_urls"`
	MerchantRef1     string             `json:"merchant_reference1"`
}

type KustomOrderLine struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"` // minor units
	TotalAmount int64  `json:"total_amount"`
	TaxRate     int64  `json:"tax_rate"`
	TotalTax    int64  `json:"total_tax_amount"`
	ImageURL    string `json:"image_url,omitempty"`
}

type KustomMerchantUrls struct {
	Terms        string `json:"terms"`
	Checkout     string `json:"checkout"`
	Confirmation string `json:"confirmation"`
	Push         string `json:"push"`
}

// KustomOrder is the provider's order representation, returned by both
// create and fetch. Raw keeps the full body for the notes bag.
type KustomOrder struct {
	OrderID      string          `json:"order_id"`
	Status       string          `json:"status"`
	HTMLSnippet  string          `json:"html_snippet"`
	SessionToken string          `json:"session_token,omitempty"`
	CheckoutURL  string          `json:"checkout_url,omitempty"`
	Raw          json.RawMessage `json:"-"`
}
