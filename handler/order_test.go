package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, status string) model.Order {
	t.Helper()
	order := model.Order{
		OrderNumber:   "PO-TEST-" + status,
		CustomerEmail: "test@example.com",
		Items: []model.OrderItem{
			{ProductRef: "1", Name: "Zyn Cool Mint", PackSize: 20, Price: 4.99, Quantity: 2},
		},
		Subtotal: 9.98,
		Total:    9.98,
		Status:   status,
	}
	require.NoError(t, database.DB.Create(&order).Error)
	return order
}

func statusApp(order model.Order, newStatus string) *fiber.App {
	app := fiber.New()
	app.Patch("/order/status", func(c *fiber.Ctx) error {
		c.Locals("inputId", int(order.ID))
		c.Locals("statusInput", model.UpdateOrderStatusInput{Status: newStatus})
		return c.Next()
	}, UpdateOrderStatus)
	return app
}

func patchStatus(t *testing.T, order model.Order, newStatus string) int {
	t.Helper()
	app := statusApp(order, newStatus)
	req := httptest.NewRequest(http.MethodPatch, "/order/status", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestUpdateOrderStatusShippedStampsTimestamp(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, constants.ORDER_PROCESSING)

	code := patchStatus(t, order, constants.ORDER_SHIPPED)
	require.Equal(t, http.StatusOK, code)

	var got model.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Equal(t, constants.ORDER_SHIPPED, got.Status)
	require.NotNil(t, got.ShippedAt)
	assert.Nil(t, got.DeliveredAt)

	code = patchStatus(t, got, constants.ORDER_DELIVERED)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Equal(t, constants.ORDER_DELIVERED, got.Status)
	assert.NotNil(t, got.ShippedAt)
	assert.NotNil(t, got.DeliveredAt)
}

func TestUpdateOrderStatusDeliveredBackfillsShipped(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, constants.ORDER_PROCESSING)

	code := patchStatus(t, order, constants.ORDER_DELIVERED)
	require.Equal(t, http.StatusOK, code)

	var got model.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.NotNil(t, got.ShippedAt)
	assert.NotNil(t, got.DeliveredAt)
}

func TestUpdateOrderStatusRejectsIllegalMoves(t *testing.T) {
	setupTestDB(t)

	cancelled := seedOrder(t, constants.ORDER_CANCELLED)
	assert.Equal(t, http.StatusBadRequest, patchStatus(t, cancelled, constants.ORDER_PROCESSING))

	pending := seedOrder(t, constants.ORDER_PENDING)
	assert.Equal(t, http.StatusBadRequest, patchStatus(t, pending, constants.ORDER_SHIPPED))

	var got model.Order
	require.NoError(t, database.DB.First(&got, pending.ID).Error)
	assert.Equal(t, constants.ORDER_PENDING, got.Status)
}

func TestUpdateOrderStatusCancelClearsFulfilment(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, constants.ORDER_PROCESSING)
	require.Equal(t, http.StatusOK, patchStatus(t, order, constants.ORDER_SHIPPED))

	require.Equal(t, http.StatusOK, patchStatus(t, order, constants.ORDER_CANCELLED))

	var got model.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Equal(t, constants.ORDER_CANCELLED, got.Status)
	assert.Nil(t, got.ShippedAt)
	assert.Nil(t, got.DeliveredAt)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, constants.ORDER_CANCELLED)
	keep := seedOrder(t, constants.ORDER_PENDING)

	app := fiber.New()
	app.Delete("/order", func(c *fiber.Ctx) error {
		c.Locals("deleteIds", model.ArrayId{IDs: []uint{order.ID}})
		return c.Next()
	}, DeleteOrder)

	req := httptest.NewRequest(http.MethodDelete, "/order", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orderCount, itemCount int64
	database.DB.Model(&model.Order{}).Count(&orderCount)
	database.DB.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	assert.Equal(t, int64(1), orderCount)
	assert.Zero(t, itemCount)

	var got model.Order
	assert.NoError(t, database.DB.First(&got, keep.ID).Error)
}
