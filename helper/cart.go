package helper

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"pouchesitaly/constants"
	"pouchesitaly/model"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingEmail = errors.New("customer email is required")
)

// ToMinorUnits converts a major-unit price to cents, rounding once.
// All line arithmetic stays in int64 cents so float accumulation can
// never drift the subtotal.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// ToMajorUnits converts cents back to a two-decimal major amount.
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// SanitizeCart drops unusable lines (negative price, non-positive
// quantity, missing name) and coerces packSize/quantity to at least 1.
// Returns ErrEmptyCart when nothing survives.
func SanitizeCart(cart []model.CartItemInput) ([]model.OrderItem, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(cart))
	for _, line := range cart {
		if line.Price < 0 || line.Quantity <= 0 || strings.TrimSpace(line.Name) == "" {
			continue
		}
		packSize := line.PackSize
		if packSize < 1 {
			packSize = 1
		}
		items = append(items, model.OrderItem{
			ProductRef: fmt.Sprintf("%v", line.ID),
			Name:       strings.TrimSpace(line.Name),
			PackSize:   packSize,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Image:      line.Image,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	return items, nil
}

// CartSubtotalMinor sums line totals in cents.
func CartSubtotalMinor(items []model.OrderItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += ToMinorUnits(item.Price) * int64(item.Quantity)
	}
	return subtotal
}

// NormalizeCountry uppercases a two-letter code, defaulting to IT when
// absent or malformed.
func NormalizeCountry(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if len(country) != 2 {
		return constants.DEFAULT_COUNTRY
	}
	for _, r := range country {
		if r < 'A' || r > 'Z' {
			return constants.DEFAULT_COUNTRY
		}
	}
	return country
}

// MapLocale narrows the storefront locale to the two the provider
// accepts.
func MapLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "it") {
		return constants.LOCALE_ITALIAN
	}
	return constants.DEFAULT_LOCALE
}
