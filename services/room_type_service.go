package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// RoomTypeService covers room-type catalog CRUD, seasonal pricing rules
// and the public availability search.
type RoomTypeService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewRoomTypeService(db *gorm.DB, avail *AvailabilityService) *RoomTypeService {
	return &RoomTypeService{DB: db, Availability: avail}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if !models.ValidCategory(rt.Category) {
		return fmt.Errorf("unknown category %q: %w", rt.Category, ErrValidation)
	}
	if rt.BasePrice <= 0 {
		return fmt.Errorf("base price must be positive: %w", ErrValidation)
	}
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room type %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load room type: %w", err)
	}
	return &rt, nil
}

// List returns room types; activeOnly filters retired ones out.
func (s *RoomTypeService) List(activeOnly bool) ([]models.RoomType, error) {
	q := s.DB.Order("base_price ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var types []models.RoomType
	if err := q.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	return types, nil
}

func (s *RoomTypeService) Update(id uint, updates map[string]interface{}) (*models.RoomType, error) {
	rt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c, ok := updates["category"].(string); ok && !models.ValidCategory(c) {
		return nil, fmt.Errorf("unknown category %q: %w", c, ErrValidation)
	}
	if err := s.DB.Model(rt).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update room type %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Deactivate retires a room type. Room types are never hard-deleted so
// historical bookings keep their reference.
func (s *RoomTypeService) Deactivate(id uint) error {
	res := s.DB.Model(&models.RoomType{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate room type %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room type %d: %w", id, ErrNotFound)
	}
	return nil
}

type SearchInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Category string // optional
}

// SearchAvailableRooms lists active room types that fit the party size
// and still have free inventory for the range.
func (s *RoomTypeService) SearchAvailableRooms(in SearchInput) ([]models.RoomType, error) {
	q := s.DB.Where("active = ? AND max_occupancy >= ?", true, in.Guests)
	if in.Category != "" {
		q = q.Where("category = ?", in.Category)
	}

	var candidates []models.RoomType
	if err := q.Order("base_price ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("search room types: %w", err)
	}

	results := make([]models.RoomType, 0, len(candidates))
	for _, rt := range candidates {
		ok, err := s.Availability.IsAvailable(rt.ID, in.CheckIn, in.CheckOut)
		if err != nil {
			return nil, err
		}
		if ok {
			results = append(results, rt)
		}
	}
	return results, nil
}

// AddSeasonalRule attaches a seasonal multiplier to a room type. The
// rule's date range is inclusive on both ends.
func (s *RoomTypeService) AddSeasonalRule(rule *models.SeasonalPricing) error {
	if _, err := s.GetByID(rule.RoomTypeID); err != nil {
		return err
	}
	if rule.Multiplier <= 0 {
		return fmt.Errorf("multiplier must be positive: %w", ErrValidation)
	}
	if rule.EndDate.Before(rule.StartDate) {
		return fmt.Errorf("seasonal rule end before start: %w", ErrInvalidDateRange)
	}
	if err := s.DB.Create(rule).Error; err != nil {
		return fmt.Errorf("create seasonal rule: %w", err)
	}
	return nil
}

func (s *RoomTypeService) ListSeasonalRules(roomTypeID uint) ([]models.SeasonalPricing, error) {
	var rules []models.SeasonalPricing
	if err := s.DB.Where("room_type_id = ?", roomTypeID).Order("start_date ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list seasonal rules: %w", err)
	}
	return rules, nil
}

func (s *RoomTypeService) DeactivateSeasonalRule(id uint) error {
	res := s.DB.Model(&models.SeasonalPricing{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate seasonal rule %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("seasonal rule %d: %w", id, ErrNotFound)
	}
	return nil
}
