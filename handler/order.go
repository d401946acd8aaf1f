package handler

import (
	"errors"
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrders is the admin order list: status filter, free search over
// order number and email, sortable, paginated. All via query params.
func GetOrders(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Order{}).Preload("Items")

	if status := c.Query("status"); status != "" {
		if !helper.IsValidStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown status", nil)
		}
		query = query.Where("status = ?", status)
	}
	if searchKey := c.Query("searchKey"); searchKey != "" {
		like := "%" + searchKey + "%"
		query = query.Where("order_number LIKE ? OR customer_email LIKE ?", like, like)
	}

	sortCol := "created_at"
	switch c.Query("sortBy") {
	case "total":
		sortCol = "total"
	case "status":
		sortCol = "status"
	}
	if c.QueryBool("sortDesc", true) {
		sortCol += " desc"
	}
	query = query.Order(sortCol)

	var totalCount int64
	query.Count(&totalCount)

	limit := c.QueryInt("limit", 20)
	page := c.QueryInt("page", 1)

	var orders []model.Order
	if err := utils.ApplyPagination(query, &limit, &page).Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus applies a manual admin status change through the
// transition table. Moving into shipped/delivered stamps the matching
// timestamp; moving back out clears both.
func UpdateOrderStatus(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("statusInput").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing status input", nil)
	}

	var order model.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !helper.CanTransition(order.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_TRANSITION,
			errors.New(order.Status+" -> "+input.Status))
	}

	now := time.Now().UTC()
	updates := map[string]any{"status": input.Status}

	switch input.Status {
	case constants.ORDER_SHIPPED:
		updates["shipped_at"] = &now
		updates["delivered_at"] = nil
	case constants.ORDER_DELIVERED:
		if order.ShippedAt == nil {
			updates["shipped_at"] = &now
		}
		updates["delivered_at"] = &now
	default:
		updates["shipped_at"] = nil
		updates["delivered_at"] = nil
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastOrder(order.ID, input.Status)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     order.ID,
		"status": input.Status,
	})
}

// SyncOrder runs provider reconciliation for one order on demand.
func SyncOrder(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	result, status, err := MarkPaid(c.Context(), uint(id), "", "")
	if err != nil {
		return utils.ErrorResponse(c, status, "Sync with provider failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func DeleteOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok || len(input.IDs) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No order ids given", nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id IN ?", input.IDs).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
