package model

import "time"

// StatSnapshot is a nightly rollup of the day's orders, written by the
// cron job so the admin dashboard can chart history without scanning
// the orders table.
type StatSnapshot struct {
	DTO
	Day        time.Time `gorm:"uniqueIndex" json:"day"`
	OrderCount int64     `json:"orderCount"`
	Revenue    float64   `json:"revenue"` // paid orders only
}
