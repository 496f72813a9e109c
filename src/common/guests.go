package common

import (
	"hms/src/db"
	"hms/src/models"
	"hms/src/types"
)

type GuestStats struct {
	TotalStays int64   `json:"total_stays"`
	TotalSpent float64 `json:"total_spent"`
}

// GetGuestStats aggregates completed stays and paid-invoice spend for a
// guest profile page.
func GetGuestStats(guestId uint) (*GuestStats, error) {
	db := db.GetDb()
	var stats GuestStats
	err := db.
		Model(&models.Reservation{}).
		Where(&models.Reservation{GuestID: guestId, Status: types.RESERVATION_CHECKED_OUT}).
		Count(&stats.TotalStays).
		Error
	if err != nil {
		return nil, err
	}
	var total *float64
	err = db.
		Model(&models.Invoice{}).
		Where("guest_id = ? AND status = ?", guestId, types.INVOICE_PAID).
		Select("SUM(total_amount)").
		Scan(&total).
		Error
	if err != nil {
		return nil, err
	}
	if total != nil {
		stats.TotalSpent = *total
	}
	return &stats, nil
}
