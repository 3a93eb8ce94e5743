package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: validation, availability,
// pricing, room assignment and status transitions.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Pricing      *PricingService
	Notifier     *NotificationService

	// now is injectable so tests can pin the calendar.
	now func() time.Time
}

func NewBookingService(db *gorm.DB, avail *AvailabilityService, pricing *PricingService, notifier *NotificationService) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: avail,
		Pricing:      pricing,
		Notifier:     notifier,
		now:          time.Now,
	}
}

// allowedTransitions is the booking state machine. Missing pairs are
// rejected; cancelled and completed are terminal.
var allowedTransitions = map[string][]string{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingCheckedIn, models.BookingCancelled},
	models.BookingCheckedIn:  {models.BookingCheckedOut},
	models.BookingCheckedOut: {models.BookingCompleted},
	models.BookingCancelled:  {},
	models.BookingCompleted:  {},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

type CreateBookingInput struct {
	UserID          uint
	RoomTypeID      uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests *string

	// AllowPastCheckIn skips the past-date guard; used by tests and
	// back-office imports.
	AllowPastCheckIn bool
}

// CreateBooking validates the request, prices the stay with the full
// seasonal-aware engine, pins a room when one is free and persists the
// booking as pending. The availability re-check, room assignment and
// insert run in one transaction so two concurrent requests cannot both
// take the last room.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	checkIn := utils.DateOnly(in.CheckIn)
	checkOut := utils.DateOnly(in.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out must be after check-in: %w", ErrInvalidDateRange)
	}
	if !in.AllowPastCheckIn && checkIn.Before(utils.DateOnly(s.now())) {
		return nil, fmt.Errorf("check-in date is in the past: %w", ErrInvalidDateRange)
	}

	var user models.User
	if err := s.DB.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", in.UserID, ErrNotFound)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, in.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room type %d: %w", in.RoomTypeID, ErrNotFound)
		}
		return nil, fmt.Errorf("load room type: %w", err)
	}
	if !rt.Active {
		return nil, fmt.Errorf("room type %d is inactive: %w", rt.ID, ErrNotFound)
	}

	if in.Guests < 1 || in.Guests > rt.MaxOccupancy {
		return nil, fmt.Errorf("%d guests exceeds max occupancy %d: %w", in.Guests, rt.MaxOccupancy, ErrCapacityExceeded)
	}

	total, err := s.Pricing.CalculatePrice(rt.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ReferenceCode:   utils.NewBookingReference(),
		UserID:          user.ID,
		RoomTypeID:      rt.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		TotalAmount:     total,
		Status:          models.BookingPending,
		SpecialRequests: in.SpecialRequests,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent creations for the same type by locking
		// its room rows before re-checking capacity.
		if err := lockRooms(tx, rt.ID); err != nil {
			return err
		}

		ok, aErr := s.Availability.isAvailableTx(tx, rt.ID, checkIn, checkOut)
		if aErr != nil {
			return aErr
		}
		if !ok {
			return fmt.Errorf("room type %d has no free rooms for %s..%s: %w",
				rt.ID, checkIn.Format(utils.DateLayout), checkOut.Format(utils.DateLayout), ErrNoAvailability)
		}

		// Best-effort pinning: capacity may allow the booking even when
		// no single room is free for the whole range.
		room, fErr := s.Availability.findFreeRoomTx(tx, rt.ID, checkIn, checkOut)
		if fErr != nil {
			return fErr
		}
		if room != nil {
			booking.RoomID = &room.ID
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.Notifier != nil {
		s.Notifier.NotifyBookingCreated(booking, &user)
	}

	return s.GetBooking(booking.ID)
}

// lockRooms takes row locks on the type's rooms when the dialect
// supports SELECT ... FOR UPDATE. sqlite (tests) does not. A failed
// locking query aborts the transaction: without the locks the
// availability re-check cannot be trusted.
func lockRooms(tx *gorm.DB, roomTypeID uint) error {
	if tx.Dialector.Name() != "mysql" {
		return nil
	}
	var rooms []models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_type_id = ?", roomTypeID).
		Find(&rooms).Error; err != nil {
		return fmt.Errorf("lock rooms for type %d: %w", roomTypeID, err)
	}
	return nil
}

// GetBooking loads a booking with its relations.
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("User").Preload("RoomType").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	return &booking, nil
}

// ListBookings returns bookings, optionally filtered by user, newest first.
func (s *BookingService) ListBookings(userID *uint) ([]models.Booking, error) {
	q := s.DB.Preload("RoomType").Preload("Room").Order("created_at DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return list, nil
}

// CancelBooking cancels a pending or confirmed booking. Later states
// cannot be cancelled; the error names the current status.
func (s *BookingService) CancelBooking(id uint) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingPending && booking.Status != models.BookingConfirmed {
		return nil, fmt.Errorf("cannot cancel booking in status %q: %w", booking.Status, ErrInvalidStatus)
	}

	if err := s.DB.Model(booking).Update("status", models.BookingCancelled).Error; err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w", id, err)
	}
	booking.Status = models.BookingCancelled

	if s.Notifier != nil {
		s.Notifier.NotifyBookingCancelled(booking)
	}
	return booking, nil
}

type UpdateBookingInput struct {
	RoomID          *uint
	Status          *string
	SpecialRequests *string
}

// UpdateBooking applies a partial update. Room reassignment checks the
// room exists, is in service and belongs to the booking's type; status
// changes go through the transition table.
func (s *BookingService) UpdateBooking(id uint, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if in.RoomID != nil {
		var room models.Room
		if err := s.DB.First(&room, *in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("room %d: %w", *in.RoomID, ErrNotFound)
			}
			return nil, fmt.Errorf("load room: %w", err)
		}
		if !room.Available {
			return nil, fmt.Errorf("room %s is out of service: %w", room.RoomNumber, ErrNoAvailability)
		}
		if room.RoomTypeID != booking.RoomTypeID {
			return nil, fmt.Errorf("room %s belongs to room type %d, booking expects %d: %w",
				room.RoomNumber, room.RoomTypeID, booking.RoomTypeID, ErrRoomTypeMismatch)
		}
		updates["room_id"] = *in.RoomID
	}

	if in.Status != nil {
		if !ValidBookingStatus(*in.Status) {
			return nil, fmt.Errorf("unknown status %q: %w", *in.Status, ErrInvalidStatusTransition)
		}
		if !transitionAllowed(booking.Status, *in.Status) {
			return nil, fmt.Errorf("cannot move booking from %q to %q: %w",
				booking.Status, *in.Status, ErrInvalidStatusTransition)
		}
		updates["status"] = *in.Status
	}

	if in.SpecialRequests != nil {
		updates["special_requests"] = *in.SpecialRequests
	}

	if len(updates) == 0 {
		return booking, nil
	}

	// Update through a fresh keyed model: booking has associations
	// preloaded, and gorm's association auto-save would write room_id
	// back from the stale Room after applying the map.
	if err := s.DB.Model(&models.Booking{ID: id}).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}

	if in.Status != nil && *in.Status == models.BookingConfirmed && s.Notifier != nil {
		s.Notifier.NotifyBookingConfirmed(booking)
	}

	return s.GetBooking(id)
}

// Transition moves the booking to the given status through the state
// machine; convenience for check-in/check-out/complete endpoints.
func (s *BookingService) Transition(id uint, status string) (*models.Booking, error) {
	return s.UpdateBooking(id, UpdateBookingInput{Status: &status})
}
