package model

// CheckoutOperation is the closed set of bridge operations. The handler
// switches over these constants so an unhandled case cannot slip in as
// a silent string mismatch.
type CheckoutOperation string

const (
	OpCreateCheckout CheckoutOperation = "create_checkout"
	OpMarkPaid       CheckoutOperation = "mark_paid"
	OpGetOrder       CheckoutOperation = "get_order"
)

// CheckoutEnvelope is the single bridge request body; the fields used
// depend on Operation.
type CheckoutEnvelope struct {
	Operation CheckoutOperation `json:"operation"`

	// create_checkout
	Customer CustomerInput   `json:"customer"`
	Cart     []CartItemInput `json:"cart"`
	Locale   string          `json:"locale"`
	Currency string          `json:"currency"`

	// mark_paid / get_order
	OrderID          uint   `json:"order_id"`
	KustomOrderID    string `json:"kustom_order_id"`
	KustomOrderToken string `json:"kustom_order_token"`
}

type CustomerInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CartItemInput struct {
	ID       any     `json:"id"` // storefront sends numbers or strings
	Name     string  `json:"name"`
	PackSize int     `json:"packSize"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type CreateCheckoutResult struct {
	OrderID          uint   `json:"order_id"`
	OrderNumber      string `json:"order_number"`
	KustomOrderID    string `json:"kustom_order_id"`
	KustomOrderToken string `json:"kustom_order_token,omitempty"`
	HTMLSnippet      string `json:"html_snippet"`
	CheckoutURL      string `json:"checkout_url,omitempty"`
	Status           string `json:"status"`
}

type MarkPaidResult struct {
	OrderID          uint           `json:"order_id"`
	OrderNumber      string         `json:"order_number"`
	Status           string         `json:"status"`
	PaymentConfirmed bool           `json:"payment_confirmed"`
	KustomStatus     string         `json:"kustom_status"`
	ConfirmationData map[string]any `json:"confirmation_data,omitempty"`
}
