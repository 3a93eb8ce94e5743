package services

import (
	"fmt"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// ReportService derives dashboard and reporting figures from persisted
// bookings, payments and rooms. Read-only.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type DashboardStats struct {
	TotalBookings   int64   `json:"total_bookings"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingPayments int64   `json:"pending_payments"`
	OccupancyRate   float64 `json:"occupancy_rate"`
}

// DashboardStats aggregates the admin dashboard numbers. Occupancy rate
// is the share of rooms currently out of inventory (availability flag
// false) over all rooms, in percent; zero when no rooms exist.
func (s *ReportService) DashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	var revenue *float64
	if err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("SUM(amount)").
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	if revenue != nil {
		stats.TotalRevenue = utils.Round2(*revenue)
	}

	if err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, fmt.Errorf("count pending payments: %w", err)
	}

	var totalRooms, occupiedRooms int64
	if err := s.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	if totalRooms > 0 {
		if err := s.DB.Model(&models.Room{}).
			Where("available = ?", false).
			Count(&occupiedRooms).Error; err != nil {
			return nil, fmt.Errorf("count occupied rooms: %w", err)
		}
		stats.OccupancyRate = utils.Round2(float64(occupiedRooms) / float64(totalRooms) * 100)
	}

	return stats, nil
}

type RevenueRow struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Count    int64   `json:"count"`
	Average  float64 `json:"average"`
}

// RevenueReport sums completed payments created inside [start, end],
// grouped by room-type category.
func (s *ReportService) RevenueReport(start, end time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := s.DB.Model(&models.Payment{}).
		Select("room_types.category AS category, SUM(payments.amount) AS revenue, COUNT(payments.id) AS count, AVG(payments.amount) AS average").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN room_types ON room_types.id = bookings.room_type_id").
		Where("payments.status = ?", models.PaymentCompleted).
		Where("payments.created_at >= ? AND payments.created_at <= ?", start, end).
		Group("room_types.category").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	for i := range rows {
		rows[i].Revenue = utils.Round2(rows[i].Revenue)
		rows[i].Average = utils.Round2(rows[i].Average)
	}
	return rows, nil
}

type OccupancyRow struct {
	Category string `json:"category"`
	Bookings int64  `json:"bookings"`
	Rooms    int64  `json:"rooms"`
}

// OccupancyReport counts confirmed bookings whose stay falls inside
// [start, end], per category. Stays spanning the range boundary are
// counted by their check-in, which makes this an approximation.
func (s *ReportService) OccupancyReport(start, end time.Time) ([]OccupancyRow, error) {
	var rows []OccupancyRow
	err := s.DB.Model(&models.Booking{}).
		Select("room_types.category AS category, COUNT(bookings.id) AS bookings, COUNT(DISTINCT bookings.room_id) AS rooms").
		Joins("JOIN room_types ON room_types.id = bookings.room_type_id").
		Where("bookings.status = ?", models.BookingConfirmed).
		Where("bookings.check_in >= ? AND bookings.check_in <= ?", start, end).
		Group("room_types.category").
		Order("bookings DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("occupancy report: %w", err)
	}
	return rows, nil
}
