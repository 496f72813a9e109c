package common

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"hms/src/config"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/types"

	"github.com/redis/go-redis/v9"
)

type OccupancyDay struct {
	Date          string  `json:"date"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	TotalRooms    int64   `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type OccupancyReport struct {
	Days         []OccupancyDay `json:"days"`
	AvgOccupancy float64        `json:"avg_occupancy"`
	TotalRooms   int64          `json:"total_rooms"`
}

// BuildOccupancyReport counts checked-in reservations covering each day of
// the range using the half-open interval rule.
func BuildOccupancyReport(startDate, endDate time.Time) (*OccupancyReport, error) {
	db := db.GetDb()
	var totalRooms int64
	if err := db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, err
	}
	report := OccupancyReport{
		Days:       make([]OccupancyDay, 0),
		TotalRooms: totalRooms,
	}
	var rateSum float64
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		var occupied int64
		err := db.
			Model(&models.Reservation{}).
			Where("status = ?", types.RESERVATION_CHECKED_IN).
			Where("check_in_date <= ? AND check_out_date > ?", current, current).
			Count(&occupied).
			Error
		if err != nil {
			return nil, err
		}
		rate := 0.0
		if totalRooms > 0 {
			rate = math.Round(float64(occupied)/float64(totalRooms)*10000) / 100
		}
		rateSum += rate
		report.Days = append(report.Days, OccupancyDay{
			Date:          current.Format(config.DATE_PARSE_FORMAT),
			OccupiedRooms: occupied,
			TotalRooms:    totalRooms,
			OccupancyRate: rate,
		})
	}
	if len(report.Days) > 0 {
		report.AvgOccupancy = math.Round(rateSum/float64(len(report.Days))*100) / 100
	}
	return &report, nil
}

type RevenueDay struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RevenueReport struct {
	Days         []RevenueDay       `json:"days"`
	TotalRevenue float64            `json:"total_revenue"`
	ByMethod     map[string]float64 `json:"by_method"`
}

// BuildRevenueReport sums completed payments per day and per method.
func BuildRevenueReport(startDate, endDate time.Time) (*RevenueReport, error) {
	db := db.GetDb()
	report := RevenueReport{
		Days:     make([]RevenueDay, 0),
		ByMethod: make(map[string]float64),
	}
	rangeEnd := endDate.AddDate(0, 0, 1)
	type dailyRow struct {
		Day   time.Time
		Total float64
	}
	var rows []dailyRow
	err := db.
		Model(&models.Payment{}).
		Select("DATE(payment_date) AS day, SUM(amount) AS total").
		Where("status = ?", types.PAYMENT_COMPLETED).
		Where("payment_date >= ? AND payment_date < ?", startDate, rangeEnd).
		Group("DATE(payment_date)").
		Order("day asc").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		report.Days = append(report.Days, RevenueDay{
			Date:    row.Day.Format(config.DATE_PARSE_FORMAT),
			Revenue: row.Total,
		})
		report.TotalRevenue += row.Total
	}
	type methodRow struct {
		PaymentMethod string
		Total         float64
	}
	var methods []methodRow
	err = db.
		Model(&models.Payment{}).
		Select("payment_method, SUM(amount) AS total").
		Where("status = ?", types.PAYMENT_COMPLETED).
		Where("payment_date >= ? AND payment_date < ?", startDate, rangeEnd).
		Group("payment_method").
		Scan(&methods).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range methods {
		report.ByMethod[row.PaymentMethod] = row.Total
	}
	return &report, nil
}

type GuestHistoryRow struct {
	GuestID    uint    `json:"guest_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TotalStays int64   `json:"total_stays"`
	TotalSpent float64 `json:"total_spent"`
}

// BuildGuestHistoryReport lists the top guests by completed stays.
func BuildGuestHistoryReport(limit int) ([]GuestHistoryRow, error) {
	db := db.GetDb()
	if limit <= 0 {
		limit = 20
	}
	rows := make([]GuestHistoryRow, 0)
	err := db.
		Model(&models.Guest{}).
		Select(`guests.id AS guest_id, guests.first_name, guests.last_name,
			COUNT(reservations.id) AS total_stays,
			COALESCE(SUM(reservations.total_amount), 0) AS total_spent`).
		Joins("LEFT JOIN reservations ON reservations.guest_id = guests.id AND reservations.status = ?", types.RESERVATION_CHECKED_OUT).
		Group("guests.id").
		Order("total_stays DESC").
		Limit(limit).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type DashboardSnapshot struct {
	Arrivals      int64     `json:"arrivals"`
	Departures    int64     `json:"departures"`
	OccupiedRooms int64     `json:"occupied_rooms"`
	TotalRooms    int64     `json:"total_rooms"`
	OccupancyRate float64   `json:"occupancy_rate"`
	PendingTasks  int64     `json:"pending_tasks"`
	GeneratedAt   time.Time `json:"generated_at"`
}

const dashboardCacheKey = "frontdesk:dashboard"
const dashboardCacheTTL = 5 * time.Minute

// BuildDashboardSnapshot computes the front-desk numbers for today.
func BuildDashboardSnapshot() (*DashboardSnapshot, error) {
	db := db.GetDb()
	today := Today()
	snapshot := DashboardSnapshot{GeneratedAt: time.Now()}

	err := db.
		Model(&models.Reservation{}).
		Where("status = ? AND check_in_date = ?", types.RESERVATION_CONFIRMED, today).
		Count(&snapshot.Arrivals).
		Error
	if err != nil {
		return nil, err
	}
	err = db.
		Model(&models.Reservation{}).
		Where("status = ? AND check_out_date = ?", types.RESERVATION_CHECKED_IN, today).
		Count(&snapshot.Departures).
		Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.Room{}).Count(&snapshot.TotalRooms).Error; err != nil {
		return nil, err
	}
	err = db.
		Model(&models.Room{}).
		Where("status = ?", types.ROOM_OCCUPIED).
		Count(&snapshot.OccupiedRooms).
		Error
	if err != nil {
		return nil, err
	}
	if snapshot.TotalRooms > 0 {
		snapshot.OccupancyRate = math.Round(float64(snapshot.OccupiedRooms)/float64(snapshot.TotalRooms)*10000) / 100
	}
	err = db.
		Model(&models.HousekeepingTask{}).
		Where("status = ?", types.TASK_PENDING).
		Count(&snapshot.PendingTasks).
		Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetDashboardSnapshot serves the cached snapshot when fresh and falls back
// to recomputing. Cache misses and redis outages are non-fatal.
func GetDashboardSnapshot() (*DashboardSnapshot, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		cached, err := rd.Get(context.Background(), dashboardCacheKey).Result()
		if err == nil {
			var snapshot DashboardSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		} else if err != redis.Nil {
			log.Printf("Error reading dashboard cache: %s\n", err.Error())
		}
	}
	snapshot, err := BuildDashboardSnapshot()
	if err != nil {
		return nil, err
	}
	CacheDashboardSnapshot(snapshot)
	return snapshot, nil
}

// CacheDashboardSnapshot stores the snapshot in redis with a short TTL.
func CacheDashboardSnapshot(snapshot *DashboardSnapshot) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := rd.Set(context.Background(), dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
		log.Printf("Error caching dashboard snapshot: %s\n", err.Error())
	}
}

// RefreshDashboardSnapshot recomputes and caches the snapshot. Runs from
// the scheduler.
func RefreshDashboardSnapshot() {
	snapshot, err := BuildDashboardSnapshot()
	if err != nil {
		log.Printf("Error refreshing dashboard snapshot: %s\n", err.Error())
		return
	}
	CacheDashboardSnapshot(snapshot)
}
