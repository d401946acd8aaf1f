package handler

import (
	"context"
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/logger"
	"pouchesitaly/model"

	"github.com/go-co-op/gocron/v2"
)

var syncScheduler gocron.Scheduler

// SweepPendingOrders reconciles orders stuck in pending against the
// payment provider. Catches customers who paid but whose mark_paid
// callback never arrived (closed tab, network drop).
func SweepPendingOrders() {
	log := logger.GetLogger().With("job", "pending_sweep")

	cutoff := time.Now().Add(-10 * time.Minute)
	var orders []model.Order
	err := database.DB.
		Where("status = ? AND created_at < ? AND created_at > ?",
			constants.ORDER_PENDING, cutoff, time.Now().AddDate(0, 0, -3)).
		Limit(50).
		Find(&orders).Error
	if err != nil {
		log.Error("sweep query failed", "error", err)
		return
	}

	for _, order := range orders {
		notes, err := model.ParseNotes(order.Notes)
		if err != nil || notes.KustomOrderID == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		result, _, err := MarkPaid(ctx, order.ID, notes.KustomOrderID, notes.KustomOrderToken)
		cancel()
		if err != nil {
			log.Warn("order sync failed", "order_id", order.ID, "error", err)
			continue
		}
		if result.Status != constants.ORDER_PENDING {
			log.Info("order reconciled", "order_id", order.ID, "status", result.Status)
		}
	}
}

func StartSyncScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Error("sync scheduler init failed", "error", err)
		return
	}

	syncScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(SweepPendingOrders),
	)
	if err != nil {
		logger.Error("sync job registration failed", "error", err)
		return
	}

	s.Start()
	logger.Info("pending order sync scheduler started", "interval", "10m")
}

func StopSyncScheduler() {
	if syncScheduler != nil {
		_ = syncScheduler.Shutdown()
	}
}
