package services

import (
	"fmt"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room type still has free
// inventory for a date range, and finds a concrete room to pin a
// booking to.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// IsAvailable is a type-level capacity check: count of in-service rooms
// vs. count of non-cancelled bookings overlapping the requested range.
// Overlap uses half-open semantics, so same-day back-to-back turnover
// does not conflict. This trusts any free room of the type to serve any
// conflicting slot; the per-room pinning in FindFreeRoom is the exact
// variant used when a booking is written.
func (s *AvailabilityService) IsAvailable(roomTypeID uint, checkIn, checkOut time.Time) (bool, error) {
	return s.isAvailableTx(s.DB, roomTypeID, checkIn, checkOut)
}

func (s *AvailabilityService) isAvailableTx(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) (bool, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return false, fmt.Errorf("check-out must be after check-in: %w", ErrInvalidDateRange)
	}

	var totalRooms int64
	if err := tx.Model(&models.Room{}).
		Where("room_type_id = ? AND available = ?", roomTypeID, true).
		Count(&totalRooms).Error; err != nil {
		return false, fmt.Errorf("count rooms: %w", err)
	}
	if totalRooms == 0 {
		return false, nil
	}

	var conflicting int64
	if err := tx.Model(&models.Booking{}).
		Where("room_type_id = ? AND status <> ?", roomTypeID, models.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&conflicting).Error; err != nil {
		return false, fmt.Errorf("count conflicting bookings: %w", err)
	}

	return totalRooms > conflicting, nil
}

// FindFreeRoom returns an in-service room of the type with no
// overlapping non-cancelled booking pinned to it, or nil when every
// room is taken for some part of the range.
func (s *AvailabilityService) FindFreeRoom(roomTypeID uint, checkIn, checkOut time.Time) (*models.Room, error) {
	return s.findFreeRoomTx(s.DB, roomTypeID, checkIn, checkOut)
}

func (s *AvailabilityService) findFreeRoomTx(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) (*models.Room, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)

	var room models.Room
	err := tx.
		Where("room_type_id = ? AND available = ?", roomTypeID, true).
		Where(`id NOT IN (?)`,
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.Booking{}).
				Select("room_id").
				Where("room_id IS NOT NULL").
				Where("room_type_id = ? AND status <> ?", roomTypeID, models.BookingCancelled).
				Where("check_in < ? AND check_out > ?", checkOut, checkIn),
		).
		Order("room_number ASC").
		First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find free room: %w", err)
	}
	return &room, nil
}
