package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingService(t *testing.T) (*BookingService, *setupResult) {
	t.Helper()
	db := setupTestDB(t)
	avail := NewAvailabilityService(db)
	pricing := NewPricingService(db)
	notifier := NewNotificationService(db)
	svc := NewBookingService(db, avail, pricing, notifier)
	svc.now = fixedNow(date(2024, time.January, 1))

	rt := createTestRoomType(t, db, "Standard", 100, 2)
	room := createTestRoom(t, db, rt.ID, "101")
	user := createTestUser(t, db, "guest@example.com")

	return svc, &setupResult{db: db, roomType: rt, room: room, user: user}
}

type setupResult struct {
	db       *gorm.DB
	roomType *models.RoomType
	room     *models.Room
	user     *models.User
}

func TestCreateBooking_Success(t *testing.T) {
	svc, env := newBookingService(t)

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 200.0, booking.TotalAmount)
	assert.NotEmpty(t, booking.ReferenceCode)
	require.NotNil(t, booking.RoomID)
	assert.Equal(t, env.room.ID, *booking.RoomID)

	// A pending notification is recorded for the guest.
	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", env.user.ID, models.NotificationPending).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBooking_UsesSeasonalPricing(t *testing.T) {
	svc, env := newBookingService(t)
	seasonalRule(t, env.db, env.roomType.ID, "high", 1.5, date(2024, time.February, 1), date(2024, time.April, 30))

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     2,
	})
	require.NoError(t, err)

	quote, err := svc.Pricing.CalculatePrice(env.roomType.ID, date(2024, time.March, 1), date(2024, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, quote, booking.TotalAmount, "booking total must match the pricing engine quote")
	assert.Equal(t, 300.0, booking.TotalAmount)
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	svc, env := newBookingService(t)

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     5,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestCreateBooking_PastCheckIn(t *testing.T) {
	svc, env := newBookingService(t)

	in := CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2023, time.December, 30),
		CheckOut:   date(2023, time.December, 31),
		Guests:     1,
	}
	_, err := svc.CreateBooking(in)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	in.AllowPastCheckIn = true
	_, err = svc.CreateBooking(in)
	assert.NoError(t, err)
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	svc, env := newBookingService(t)

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 3),
		CheckOut:   date(2024, time.March, 3),
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBooking_NoAvailability(t *testing.T) {
	svc, env := newBookingService(t)

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     1,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 2),
		CheckOut:   date(2024, time.March, 4),
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestCreateBooking_InactiveRoomType(t *testing.T) {
	svc, env := newBookingService(t)
	require.NoError(t, env.db.Model(env.roomType).Update("active", false).Error)

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBooking_UnknownUserAndType(t *testing.T) {
	svc, env := newBookingService(t)

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:     9999,
		RoomTypeID: env.roomType.ID,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateBooking(CreateBookingInput{
		UserID:     env.user.ID,
		RoomTypeID: 9999,
		CheckIn:    date(2024, time.March, 1),
		CheckOut:   date(2024, time.March, 3),
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking(t *testing.T) {
	svc, env := newBookingService(t)

	booking := createTestBooking(t, env.db, env.user.ID, env.roomType.ID, nil,
		models.BookingPending, date(2024, time.March, 1), date(2024, time.March, 3))

	cancelled, err := svc.CancelBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	// Terminal: a second cancel is rejected and names the status.
	_, err = svc.CancelBooking(booking.ID)
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), models.BookingCancelled)
}

func TestCancelBooking_FromCheckedIn(t *testing.T) {
	svc, env := newBookingService(t)

	booking := createTestBooking(t, env.db, env.user.ID, env.roomType.ID, nil,
		models.BookingCheckedIn, date(2024, time.March, 1), date(2024, time.March, 3))

	_, err := svc.CancelBooking(booking.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusTransitionTable(t *testing.T) {
	allStatuses := []string{
		models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn,
		models.BookingCheckedOut, models.BookingCancelled, models.BookingCompleted,
	}
	allowed := map[[2]string]bool{
		{models.BookingPending, models.BookingConfirmed}:    true,
		{models.BookingPending, models.BookingCancelled}:    true,
		{models.BookingConfirmed, models.BookingCheckedIn}:  true,
		{models.BookingConfirmed, models.BookingCancelled}:  true,
		{models.BookingCheckedIn, models.BookingCheckedOut}: true,
		{models.BookingCheckedOut, models.BookingCompleted}: true,
	}

	svc, env := newBookingService(t)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			booking := createTestBooking(t, env.db, env.user.ID, env.roomType.ID, nil,
				from, date(2024, time.March, 1), date(2024, time.March, 3))

			_, err := svc.Transition(booking.ID, to)
			if allowed[[2]string{from, to}] {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestUpdateBooking_RoomReassignment(t *testing.T) {
	svc, env := newBookingService(t)

	other := createTestRoomType(t, env.db, "Deluxe", 200, 4)
	foreignRoom := createTestRoom(t, env.db, other.ID, "201")
	secondRoom := createTestRoom(t, env.db, env.roomType.ID, "102")
	downRoom := createTestRoom(t, env.db, env.roomType.ID, "103")
	require.NoError(t, env.db.Model(downRoom).Update("available", false).Error)

	booking := createTestBooking(t, env.db, env.user.ID, env.roomType.ID, &env.room.ID,
		models.BookingPending, date(2024, time.March, 1), date(2024, time.March, 3))

	_, err := svc.UpdateBooking(booking.ID, UpdateBookingInput{RoomID: &foreignRoom.ID})
	assert.ErrorIs(t, err, ErrRoomTypeMismatch)

	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{RoomID: &downRoom.ID})
	assert.ErrorIs(t, err, ErrNoAvailability)

	missing := uint(9999)
	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{RoomID: &missing})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdateBooking(booking.ID, UpdateBookingInput{RoomID: &secondRoom.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.RoomID)
	assert.Equal(t, secondRoom.ID, *updated.RoomID)

	// The stored column must change too, not just the returned struct.
	var raw struct{ RoomID *uint }
	require.NoError(t, env.db.Model(&models.Booking{}).Select("room_id").Where("id = ?", booking.ID).Scan(&raw).Error)
	require.NotNil(t, raw.RoomID)
	assert.Equal(t, secondRoom.ID, *raw.RoomID)
}

func TestUpdateBooking_PartialFields(t *testing.T) {
	svc, env := newBookingService(t)

	booking := createTestBooking(t, env.db, env.user.ID, env.roomType.ID, nil,
		models.BookingPending, date(2024, time.March, 1), date(2024, time.March, 3))

	notes := "late arrival"
	updated, err := svc.UpdateBooking(booking.ID, UpdateBookingInput{SpecialRequests: &notes})
	require.NoError(t, err)
	require.NotNil(t, updated.SpecialRequests)
	assert.Equal(t, notes, *updated.SpecialRequests)
	assert.Equal(t, models.BookingPending, updated.Status, "status untouched by partial update")

	unknown := "teleported"
	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{Status: &unknown})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}
