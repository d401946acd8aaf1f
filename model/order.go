package model

import (
	"encoding/json"
	"time"
)

// ShippingAddress is embedded into the order row (address_ columns).
type ShippingAddress struct {
	Email      string `json:"email"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `gorm:"size:2" json:"country"` // ISO 3166-1 alpha-2
	Phone      string `json:"phone"`
}

type Order struct {
	DTO
	OrderNumber     string          `gorm:"uniqueIndex;size:40" json:"orderNumber"` // PO-XXXX-xxxxxxxx, immutable
	CustomerEmail   string          `gorm:"not null;index" json:"customerEmail"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:address_" json:"shippingAddress"`
	Items           []OrderItem     `gorm:"foreignKey:OrderId" json:"items"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCost    float64         `json:"shippingCost"`
	Total           float64         `json:"total"`
	Status          string          `gorm:"size:20;index;default:pending" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes"` // JSON bag, provider metadata lives here
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

// OrderItem snapshots a cart line at purchase time.
type OrderItem struct {
	DTO
	OrderId    uint    `gorm:"not null;index" json:"orderId"`
	ProductRef string  `gorm:"size:64" json:"productRef"`
	Name       string  `gorm:"not null" json:"name"`
	PackSize   int     `gorm:"default:1" json:"packSize"`
	Price      float64 `gorm:"not null" json:"price"` // unit price, major units
	Quantity   int     `gorm:"not null" json:"quantity"`
	Image      string  `json:"image,omitempty"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required" json:"status"`
}

// OrderNotes is the typed view over the JSON notes bag. Unknown keys
// written by other tools survive every merge.
type OrderNotes struct {
	CreatedAt        string          `json:"created_at,omitempty"`
	Processor        string          `json:"processor,omitempty"`
	OrderNumber      string          `json:"order_number,omitempty"`
	KustomOrderID    string          `json:"kustom_order_id,omitempty"`
	KustomOrderToken string          `json:"kustom_order_token,omitempty"`
	KustomStatus     string          `json:"kustom_status,omitempty"`
	SessionCreatedAt string          `json:"kustom_session_created_at,omitempty"`
	LastSyncedAt     string          `json:"last_synced_at,omitempty"`
	CheckoutError    string          `json:"checkout_error,omitempty"`
	FailedAt         string          `json:"failed_at,omitempty"`
	Confirmation     json.RawMessage `json:"confirmation,omitempty"` // raw provider payload
}

// ParseNotes decodes the bag; an empty column yields zero notes.
func ParseNotes(raw string) (OrderNotes, error) {
	var notes OrderNotes
	if raw == "" {
		return notes, nil
	}
	err := json.Unmarshal([]byte(raw), &notes)
	return notes, err
}

// MergeNotes overlays patch onto the existing bag. Keys absent from the
// patch keep their stored value, including keys this code never defined.
func MergeNotes(existing string, patch map[string]any) (string, error) {
	merged := map[string]any{}
	if existing != "" {
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			return "", err
		}
	}
	for k, v := range patch {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
