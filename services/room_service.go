package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// RoomService is admin CRUD on physical rooms.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("room number is required: %w", ErrValidation)
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("room type %d: %w", room.RoomTypeID, ErrNotFound)
		}
		return fmt.Errorf("load room type: %w", err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("room number %q already exists: %w", room.RoomNumber, ErrDuplicateRoomNumber)
		}
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load room: %w", err)
	}
	return &room, nil
}

// List returns rooms, optionally restricted to one room type.
func (s *RoomService) List(roomTypeID *uint) ([]models.Room, error) {
	q := s.DB.Preload("RoomType").Order("room_number ASC")
	if roomTypeID != nil {
		q = q.Where("room_type_id = ?", *roomTypeID)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// SetAvailability toggles the maintenance flag. It does not touch
// bookings: an out-of-service room simply stops counting as inventory.
func (s *RoomService) SetAvailability(id uint, available bool) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Update("available", available).Error; err != nil {
		return nil, fmt.Errorf("update room %d availability: %w", id, err)
	}
	room.Available = available
	return room, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return nil, fmt.Errorf("room number already exists: %w", ErrDuplicateRoomNumber)
		}
		return nil, fmt.Errorf("update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return nil
}
