package helper

import (
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/logger"
	"pouchesitaly/model"

	"github.com/robfig/cron/v3"
)

var statsScheduler *cron.Cron

// StartStatsScheduler writes a StatSnapshot for the previous day every
// night at 00:10 so the admin dashboard can chart history cheaply.
func StartStatsScheduler() {
	statsScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := statsScheduler.AddFunc("10 0 * * *", SnapshotDailyStats)
	if err != nil {
		logger.Error("stats scheduler init failed", "error", err)
		return
	}

	statsScheduler.Start()
	logger.Info("stats scheduler started")
}

func StopStatsScheduler() {
	if statsScheduler != nil {
		statsScheduler.Stop()
	}
}

// SnapshotDailyStats rolls up yesterday's orders into a single row.
// Re-running for the same day overwrites the previous snapshot.
func SnapshotDailyStats() {
	day := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	next := day.AddDate(0, 0, 1)

	var count int64
	var revenue float64

	database.DB.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", day, next).
		Count(&count)

	database.DB.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ? AND status IN ?", day, next,
			[]string{constants.ORDER_PROCESSING, constants.ORDER_SHIPPED, constants.ORDER_DELIVERED}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue)

	snapshot := model.StatSnapshot{Day: day, OrderCount: count, Revenue: revenue}
	result := database.DB.Where(model.StatSnapshot{Day: day}).
		Assign(model.StatSnapshot{OrderCount: count, Revenue: revenue}).
		FirstOrCreate(&snapshot)

	if result.Error != nil {
		logger.Error("stats snapshot failed", "day", day, "error", result.Error)
		return
	}
	logger.Info("stats snapshot written", "day", day, "orders", count, "revenue", revenue)
}
