package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRoomTypeService(db *gorm.DB) *RoomTypeService {
	return NewRoomTypeService(db, NewAvailabilityService(db))
}

func TestRoomTypeCreate_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomTypeService(db)

	err := svc.Create(&models.RoomType{Name: "Odd", Category: "penthouse", BasePrice: 100, MaxOccupancy: 2})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.RoomType{Name: "Free", Category: models.CategoryStandard, BasePrice: 0, MaxOccupancy: 2})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.RoomType{
		Name: "Standard", Category: models.CategoryStandard,
		BasePrice: 100, MaxOccupancy: 2, Active: true,
	})
	assert.NoError(t, err)
}

func TestRoomTypeDeactivate(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomTypeService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)
	require.NoError(t, svc.Deactivate(rt.ID))

	got, err := svc.GetByID(rt.ID)
	require.NoError(t, err, "deactivated types stay loadable for old bookings")
	assert.False(t, got.Active)

	active, err := svc.List(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, svc.Deactivate(999), ErrNotFound)
}

func TestRoomTypeUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomTypeService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)

	got, err := svc.Update(rt.ID, map[string]interface{}{"base_price": 120.0, "max_occupancy": 3})
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.BasePrice)
	assert.Equal(t, 3, got.MaxOccupancy)

	_, err = svc.Update(rt.ID, map[string]interface{}{"category": "penthouse"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchAvailableRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomTypeService(db)

	standard := createTestRoomType(t, db, "Standard", 100, 2)
	deluxe := &models.RoomType{
		Name: "Deluxe", Category: models.CategoryDeluxe,
		BasePrice: 200, MaxOccupancy: 4, Active: true,
	}
	require.NoError(t, db.Create(deluxe).Error)
	retired := &models.RoomType{
		Name: "Old Suite", Category: models.CategorySuite,
		BasePrice: 500, MaxOccupancy: 6, Active: false,
	}
	require.NoError(t, db.Create(retired).Error)

	var storedRetired models.RoomType
	require.NoError(t, db.First(&storedRetired, retired.ID).Error)
	require.False(t, storedRetired.Active, "inactive flag must survive the insert")

	createTestRoom(t, db, standard.ID, "101")
	createTestRoom(t, db, deluxe.ID, "201")
	createTestRoom(t, db, retired.ID, "301")

	checkIn := date(2024, time.July, 10)
	checkOut := date(2024, time.July, 12)

	results, err := svc.SearchAvailableRooms(SearchInput{CheckIn: checkIn, CheckOut: checkOut, Guests: 2})
	require.NoError(t, err)
	require.Len(t, results, 2, "retired types never surface in search")
	assert.Equal(t, "Standard", results[0].Name, "cheapest first")
	assert.Equal(t, "Deluxe", results[1].Name)

	// Party too big for a standard room.
	results, err = svc.SearchAvailableRooms(SearchInput{CheckIn: checkIn, CheckOut: checkOut, Guests: 3})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Deluxe", results[0].Name)

	// Category filter.
	results, err = svc.SearchAvailableRooms(SearchInput{
		CheckIn: checkIn, CheckOut: checkOut, Guests: 2, Category: models.CategoryDeluxe,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Deluxe", results[0].Name)

	// Booking out the only standard room drops it from results.
	user := createTestUser(t, db, "guest@example.com")
	createTestBooking(t, db, user.ID, standard.ID, nil, models.BookingConfirmed, checkIn, checkOut)

	results, err = svc.SearchAvailableRooms(SearchInput{CheckIn: checkIn, CheckOut: checkOut, Guests: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Deluxe", results[0].Name)
}

func TestSeasonalRules(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomTypeService(db)

	rt := createTestRoomType(t, db, "Standard", 100, 2)

	err := svc.AddSeasonalRule(&models.SeasonalPricing{
		RoomTypeID: 999, Season: "Ghost", Multiplier: 1.5,
		StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30), Active: true,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.AddSeasonalRule(&models.SeasonalPricing{
		RoomTypeID: rt.ID, Season: "Free", Multiplier: 0,
		StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30), Active: true,
	})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.AddSeasonalRule(&models.SeasonalPricing{
		RoomTypeID: rt.ID, Season: "Backwards", Multiplier: 1.5,
		StartDate: date(2024, time.June, 30), EndDate: date(2024, time.June, 1), Active: true,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	rule := &models.SeasonalPricing{
		RoomTypeID: rt.ID, Season: "Summer", Multiplier: 1.5,
		StartDate: date(2024, time.June, 1), EndDate: date(2024, time.August, 31), Active: true,
	}
	require.NoError(t, svc.AddSeasonalRule(rule))

	rules, err := svc.ListSeasonalRules(rt.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Summer", rules[0].Season)

	require.NoError(t, svc.DeactivateSeasonalRule(rule.ID))
	rules, err = svc.ListSeasonalRules(rt.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Active)

	assert.ErrorIs(t, svc.DeactivateSeasonalRule(999), ErrNotFound)
}
