package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPayment(t *testing.T, db *gorm.DB, bookingID uint, amount float64, status string) *models.Payment {
	t.Helper()
	p := &models.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Method:    models.PaymentMethodCard,
		Status:    status,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestDashboardStats_Empty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.PendingPayments)
	assert.Zero(t, stats.OccupancyRate, "no rooms means zero occupancy, not a division error")
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)
	user := createTestUser(t, db, "guest@example.com")

	createTestRoom(t, db, rt.ID, "101")
	createTestRoom(t, db, rt.ID, "102")
	room3 := createTestRoom(t, db, rt.ID, "103")
	room4 := createTestRoom(t, db, rt.ID, "104")
	require.NoError(t, db.Model(room3).Update("available", false).Error)
	require.NoError(t, db.Model(room4).Update("available", false).Error)

	b1 := createTestBooking(t, db, user.ID, rt.ID, nil, models.BookingConfirmed,
		date(2024, time.March, 1), date(2024, time.March, 3))
	b2 := createTestBooking(t, db, user.ID, rt.ID, nil, models.BookingPending,
		date(2024, time.April, 1), date(2024, time.April, 3))

	createTestPayment(t, db, b1.ID, 200, models.PaymentCompleted)
	createTestPayment(t, db, b1.ID, 80.5, models.PaymentCompleted)
	createTestPayment(t, db, b2.ID, 150, models.PaymentPending)
	createTestPayment(t, db, b2.ID, 150, models.PaymentFailed)

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, 280.5, stats.TotalRevenue, "only completed payments count")
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, 50.0, stats.OccupancyRate, "2 of 4 rooms out of inventory")
}

func TestRevenueReport_GroupsByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	standard := createTestRoomType(t, db, "Standard", 100, 2)
	deluxe := &models.RoomType{
		Name: "Deluxe", Category: models.CategoryDeluxe,
		BasePrice: 200, MaxOccupancy: 4, Active: true,
	}
	require.NoError(t, db.Create(deluxe).Error)
	user := createTestUser(t, db, "guest@example.com")

	bs := createTestBooking(t, db, user.ID, standard.ID, nil, models.BookingConfirmed,
		date(2024, time.March, 1), date(2024, time.March, 3))
	bd := createTestBooking(t, db, user.ID, deluxe.ID, nil, models.BookingConfirmed,
		date(2024, time.March, 1), date(2024, time.March, 3))

	createTestPayment(t, db, bs.ID, 100, models.PaymentCompleted)
	createTestPayment(t, db, bs.ID, 300, models.PaymentCompleted)
	createTestPayment(t, db, bd.ID, 400, models.PaymentCompleted)
	createTestPayment(t, db, bd.ID, 999, models.PaymentPending)

	start := time.Now().UTC().Add(-time.Hour)
	end := time.Now().UTC().Add(time.Hour)

	rows, err := svc.RevenueReport(start, end)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byCategory := map[string]RevenueRow{}
	for _, row := range rows {
		byCategory[row.Category] = row
	}
	assert.Equal(t, 400.0, byCategory[models.CategoryStandard].Revenue)
	assert.Equal(t, int64(2), byCategory[models.CategoryStandard].Count)
	assert.Equal(t, 200.0, byCategory[models.CategoryStandard].Average)
	assert.Equal(t, 400.0, byCategory[models.CategoryDeluxe].Revenue)
	assert.Equal(t, int64(1), byCategory[models.CategoryDeluxe].Count)
}

func TestRevenueReport_RespectsWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)
	user := createTestUser(t, db, "guest@example.com")
	booking := createTestBooking(t, db, user.ID, rt.ID, nil, models.BookingConfirmed,
		date(2024, time.March, 1), date(2024, time.March, 3))
	createTestPayment(t, db, booking.ID, 100, models.PaymentCompleted)

	rows, err := svc.RevenueReport(date(2020, time.January, 1), date(2020, time.December, 31))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOccupancyReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)
	room := createTestRoom(t, db, rt.ID, "101")
	user := createTestUser(t, db, "guest@example.com")

	createTestBooking(t, db, user.ID, rt.ID, &room.ID, models.BookingConfirmed,
		date(2024, time.March, 10), date(2024, time.March, 12))
	// Pending bookings are not occupancy.
	createTestBooking(t, db, user.ID, rt.ID, nil, models.BookingPending,
		date(2024, time.March, 10), date(2024, time.March, 12))
	// Outside the window.
	createTestBooking(t, db, user.ID, rt.ID, &room.ID, models.BookingConfirmed,
		date(2024, time.June, 10), date(2024, time.June, 12))

	rows, err := svc.OccupancyReport(date(2024, time.March, 1), date(2024, time.March, 31))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CategoryStandard, rows[0].Category)
	assert.Equal(t, int64(1), rows[0].Bookings)
}
