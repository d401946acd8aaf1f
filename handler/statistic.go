package handler

import (
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

var paidStatuses = []string{constants.ORDER_PROCESSING, constants.ORDER_SHIPPED, constants.ORDER_DELIVERED}

// GetAdminStats powers the dashboard header: totals, today vs
// yesterday growth, status breakdown, best sellers.
func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var totalOrders int64
	db.Model(&model.Order{}).Count(&totalOrders)

	var totalRevenue float64
	db.Model(&model.Order{}).Where("status IN ?", paidStatuses).
		Select("COALESCE(SUM(total), 0)").Scan(&totalRevenue)

	var revenueToday, revenueYesterday float64
	db.Model(&model.Order{}).
		Where("status IN ? AND created_at >= ?", paidStatuses, todayStart).
		Select("COALESCE(SUM(total), 0)").Scan(&revenueToday)
	db.Model(&model.Order{}).
		Where("status IN ? AND created_at >= ? AND created_at < ?", paidStatuses, yesterdayStart, todayStart).
		Select("COALESCE(SUM(total), 0)").Scan(&revenueYesterday)

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var byStatus []statusCount
	db.Model(&model.Order{}).Select("status, COUNT(*) as count").
		Group("status").Scan(&byStatus)

	type topProduct struct {
		Name     string `json:"name"`
		Quantity int64  `json:"quantity"`
	}
	var topProducts []topProduct
	db.Model(&model.OrderItem{}).
		Select("name, SUM(quantity) as quantity").
		Group("name").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts)

	var snapshots []model.StatSnapshot
	db.Order("day desc").Limit(30).Find(&snapshots)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalOrders":   totalOrders,
		"totalRevenue":  totalRevenue,
		"revenueToday":  revenueToday,
		"revenueGrowth": utils.CalculateGrowth(revenueToday, revenueYesterday),
		"byStatus":      byStatus,
		"topProducts":   topProducts,
		"history":       snapshots,
	})
}
