package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{FullName: "Test Guest", Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRoomType(t *testing.T, db *gorm.DB, name string, basePrice float64, maxOccupancy int) *models.RoomType {
	t.Helper()
	rt := &models.RoomType{
		Name:         name,
		Category:     models.CategoryStandard,
		BasePrice:    basePrice,
		MaxOccupancy: maxOccupancy,
		Active:       true,
	}
	require.NoError(t, db.Create(rt).Error)
	return rt
}

func createTestRoom(t *testing.T, db *gorm.DB, roomTypeID uint, number string) *models.Room {
	t.Helper()
	room := &models.Room{RoomNumber: number, RoomTypeID: roomTypeID, Available: true}
	require.NoError(t, db.Create(room).Error)
	return room
}

var bookingRefSeq uint64

func createTestBooking(t *testing.T, db *gorm.DB, userID, roomTypeID uint, roomID *uint, status string, checkIn, checkOut time.Time) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		ReferenceCode: fmt.Sprintf("BK-TEST-%d", atomic.AddUint64(&bookingRefSeq, 1)),
		UserID:        userID,
		RoomTypeID:    roomTypeID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        1,
		Status:        status,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func seasonalRule(t *testing.T, db *gorm.DB, roomTypeID uint, season string, mult float64, start, end time.Time) *models.SeasonalPricing {
	t.Helper()
	rule := &models.SeasonalPricing{
		RoomTypeID: roomTypeID,
		Season:     season,
		Multiplier: mult,
		StartDate:  start,
		EndDate:    end,
		Active:     true,
	}
	require.NoError(t, db.Create(rule).Error)
	return rule
}
