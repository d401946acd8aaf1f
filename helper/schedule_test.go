package helper

import (
	"testing"
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupStatsDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:stats_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	require.NoError(t, db.Exec("DELETE FROM orders").Error)
	require.NoError(t, db.Exec("DELETE FROM stat_snapshots").Error)
	database.DB = db
}

func seedOrderAt(t *testing.T, status string, total float64, createdAt time.Time) {
	t.Helper()
	order := model.Order{
		OrderNumber:   GenerateOrderNumber(),
		CustomerEmail: "t@example.com",
		Total:         total,
		Status:        status,
	}
	require.NoError(t, database.DB.Create(&order).Error)
	require.NoError(t, database.DB.Model(&order).UpdateColumn("created_at", createdAt).Error)
}

func TestSnapshotDailyStats(t *testing.T) {
	setupStatsDB(t)

	yesterday := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour).Add(12 * time.Hour)
	seedOrderAt(t, constants.ORDER_PROCESSING, 10.00, yesterday)
	seedOrderAt(t, constants.ORDER_SHIPPED, 5.50, yesterday)
	seedOrderAt(t, constants.ORDER_CANCELLED, 99.99, yesterday) // not revenue
	seedOrderAt(t, constants.ORDER_PROCESSING, 7.00, time.Now()) // today, out of window

	SnapshotDailyStats()

	var snapshot model.StatSnapshot
	require.NoError(t, database.DB.First(&snapshot).Error)
	assert.Equal(t, int64(3), snapshot.OrderCount)
	assert.InDelta(t, 15.50, snapshot.Revenue, 0.001)
}

func TestSnapshotDailyStatsIsRerunnable(t *testing.T) {
	setupStatsDB(t)

	yesterday := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour).Add(6 * time.Hour)
	seedOrderAt(t, constants.ORDER_PROCESSING, 20.00, yesterday)

	SnapshotDailyStats()
	seedOrderAt(t, constants.ORDER_DELIVERED, 3.00, yesterday)
	SnapshotDailyStats()

	var count int64
	database.DB.Model(&model.StatSnapshot{}).Count(&count)
	assert.Equal(t, int64(1), count, "rerun overwrites, never duplicates")

	var snapshot model.StatSnapshot
	require.NoError(t, database.DB.First(&snapshot).Error)
	assert.InDelta(t, 23.00, snapshot.Revenue, 0.001)
}
