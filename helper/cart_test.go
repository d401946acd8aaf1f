package helper

import (
	"testing"

	"pouchesitaly/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCartDropsBadLines(t *testing.T) {
	items, err := SanitizeCart([]model.CartItemInput{
		{ID: 1, Name: "Zyn Cool Mint", Price: 4.99, Quantity: 2, PackSize: 20},
		{ID: 2, Name: "Negative", Price: -1, Quantity: 1},
		{ID: 3, Name: "Zero qty", Price: 4.99, Quantity: 0},
		{ID: 4, Name: "   ", Price: 4.99, Quantity: 1},
		{ID: 5, Name: "Velo Ice", Price: 5.49, Quantity: 1, PackSize: 0},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Zyn Cool Mint", items[0].Name)
	assert.Equal(t, "1", items[0].ProductRef)
	assert.Equal(t, 20, items[0].PackSize)

	// missing pack size coalesces to 1
	assert.Equal(t, 1, items[1].PackSize)
}

func TestSanitizeCartEmpty(t *testing.T) {
	_, err := SanitizeCart(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = SanitizeCart([]model.CartItemInput{
		{ID: 1, Name: "x", Price: 1, Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCartSubtotalRoundsPerLine(t *testing.T) {
	items := []model.OrderItem{
		{Name: "a", Price: 4.99, Quantity: 3},
	}
	subtotal := CartSubtotalMinor(items)
	assert.Equal(t, int64(1497), subtotal)
	assert.Equal(t, 14.97, ToMajorUnits(subtotal))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(499), ToMinorUnits(4.99))
	assert.Equal(t, int64(500), ToMinorUnits(5.0))
	assert.Equal(t, int64(0), ToMinorUnits(0))
	// 19.99 is not exactly representable; rounding must still land on 1999
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	// half-cent prices round away from zero
	assert.Equal(t, int64(201), ToMinorUnits(2.005))
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "IT", NormalizeCountry(""))
	assert.Equal(t, "IT", NormalizeCountry("ITA"))
	assert.Equal(t, "IT", NormalizeCountry("1t"))
	assert.Equal(t, "DE", NormalizeCountry(" de "))
	assert.Equal(t, "FR", NormalizeCountry("FR"))
}

func TestMapLocale(t *testing.T) {
	assert.Equal(t, "it-IT", MapLocale("it"))
	assert.Equal(t, "it-IT", MapLocale("IT-it"))
	assert.Equal(t, "en-US", MapLocale("en"))
	assert.Equal(t, "en-US", MapLocale(""))
	assert.Equal(t, "en-US", MapLocale("de"))
}
