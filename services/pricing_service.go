package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// PricingService computes the total charge for a room type over a date
// range, applying the room type's active seasonal multipliers.
type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

// Quote is the detailed result of a price calculation.
type Quote struct {
	RoomTypeID uint       `json:"room_type_id"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Nights     int        `json:"nights"`
	BasePrice  float64    `json:"base_price"`
	Total      float64    `json:"total"`
	Days       []DayPrice `json:"days"`
}

type DayPrice struct {
	Date       time.Time `json:"date"`
	Multiplier float64   `json:"multiplier"`
	Season     string    `json:"season,omitempty"`
	Amount     float64   `json:"amount"`
}

// CalculatePrice totals base_price x seasonal multiplier for every
// calendar day in [checkIn, checkOut). The checkout day itself is not
// charged: a stay of N nights covers N days starting at check-in.
func (s *PricingService) CalculatePrice(roomTypeID uint, checkIn, checkOut time.Time) (float64, error) {
	q, err := s.QuotePrice(roomTypeID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

// QuotePrice is CalculatePrice with the per-day breakdown attached.
func (s *PricingService) QuotePrice(roomTypeID uint, checkIn, checkOut time.Time) (*Quote, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out must be after check-in: %w", ErrInvalidDateRange)
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room type %d: %w", roomTypeID, ErrNotFound)
		}
		return nil, fmt.Errorf("load room type %d: %w", roomTypeID, err)
	}

	var rules []models.SeasonalPricing
	if err := s.DB.
		Where("room_type_id = ? AND active = ?", roomTypeID, true).
		Where("start_date <= ? AND end_date >= ?", checkOut, checkIn).
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("load seasonal pricing: %w", err)
	}

	quote := &Quote{
		RoomTypeID: rt.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     int(checkOut.Sub(checkIn).Hours() / 24),
		BasePrice:  rt.BasePrice,
	}

	total := 0.0
	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		mult, season := pickSeasonalRule(rules, day)
		amount := utils.Round2(rt.BasePrice * mult)
		total += amount
		quote.Days = append(quote.Days, DayPrice{
			Date:       day,
			Multiplier: mult,
			Season:     season,
			Amount:     amount,
		})
	}
	quote.Total = utils.Round2(total)

	return quote, nil
}

// pickSeasonalRule selects the rule covering the given day. When rules
// overlap, the narrowest [start,end] range wins; exact ties fall back to
// the lowest ID so the choice stays deterministic.
func pickSeasonalRule(rules []models.SeasonalPricing, day time.Time) (float64, string) {
	var best *models.SeasonalPricing
	for i := range rules {
		r := &rules[i]
		if day.Before(r.StartDate) || day.After(r.EndDate) {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		span := r.EndDate.Sub(r.StartDate)
		bestSpan := best.EndDate.Sub(best.StartDate)
		if span < bestSpan || (span == bestSpan && r.ID < best.ID) {
			best = r
		}
	}
	if best == nil {
		return 1.0, ""
	}
	return best.Multiplier, best.Season
}
