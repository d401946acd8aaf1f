package constants

// Order lifecycle statuses. Stored lowercase in the orders table.
const (
	ORDER_PENDING    = "pending"
	ORDER_PROCESSING = "processing"
	ORDER_SHIPPED    = "shipped"
	ORDER_DELIVERED  = "delivered"
	ORDER_CANCELLED  = "cancelled"
	ORDER_REFUNDED   = "refunded"
)

// Checkout processor tag written into the order notes bag.
const PROCESSOR_KUSTOM = "kustom"

// Defaults applied when the storefront omits them.
const (
	DEFAULT_COUNTRY  = "IT"
	DEFAULT_CURRENCY = "EUR"
	DEFAULT_LOCALE   = "en-US"
	LOCALE_ITALIAN   = "it-IT"
)

// Admin account roles.
const (
	ROLE_ADMIN  = "ADMIN"
	ROLE_EDITOR = "EDITOR"
)

// Error messages shared across handlers.
const (
	MISSING_LOGIN_INPUT       = "Username and password are required"
	INVALID_USERNAME          = "Username does not exist"
	INVALID_PASSWORD          = "Invalid password"
	ACCOUNT_NOT_ACTIVE        = "Account is disabled"
	ERROR_INTERNAL_ERROR      = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER  = "Input is not a number"
	ORDER_NOT_FOUND           = "Order not found"
	INVALID_STATUS_TRANSITION = "Invalid status transition"
)

// Tables the admin data proxy is allowed to touch. Everything else is rejected.
var ProxyTableWhitelist = []string{
	"products",
	"pages",
	"menus",
	"site_metas",
	"orders",
	"order_items",
}
