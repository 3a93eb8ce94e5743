package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// PromoService validates and redeems promo codes, plus admin CRUD on
// offers.
type PromoService struct {
	DB *gorm.DB

	now func() time.Time
}

func NewPromoService(db *gorm.DB) *PromoService {
	return &PromoService{DB: db, now: time.Now}
}

// PromoValidation is the outcome of a validation pass. Validation never
// mutates the offer; redemption is a separate call.
type PromoValidation struct {
	Valid    bool               `json:"valid"`
	Discount float64            `json:"discount"`
	Reason   string             `json:"reason,omitempty"`
	Offer    *models.PromoOffer `json:"offer,omitempty"`
}

// ValidatePromoCode checks a code against a booking amount and returns
// the discount it would grant. Invalid codes come back with Valid=false
// and a reason, not an error.
func (s *PromoService) ValidatePromoCode(code string, bookingAmount float64) (*PromoValidation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var offer models.PromoOffer
	if err := s.DB.Where("code = ?", code).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PromoValidation{Reason: "code not found"}, nil
		}
		return nil, fmt.Errorf("load promo offer: %w", err)
	}

	if !offer.Active {
		return &PromoValidation{Reason: "offer is inactive"}, nil
	}

	today := utils.DateOnly(s.now())
	if today.Before(utils.DateOnly(offer.ValidFrom)) || today.After(utils.DateOnly(offer.ValidUntil)) {
		return &PromoValidation{Reason: "offer is outside its validity window"}, nil
	}

	if offer.UsageLimit != nil && offer.UsedCount >= *offer.UsageLimit {
		return &PromoValidation{Reason: "usage limit reached"}, nil
	}

	if offer.MinBookingAmount != nil && bookingAmount < *offer.MinBookingAmount {
		return &PromoValidation{Reason: fmt.Sprintf("booking amount below minimum %.2f", *offer.MinBookingAmount)}, nil
	}

	var discount float64
	switch offer.DiscountType {
	case models.DiscountPercentage:
		discount = bookingAmount * offer.DiscountValue / 100
	case models.DiscountFixed:
		discount = offer.DiscountValue
	default:
		return &PromoValidation{Reason: "unknown discount type"}, nil
	}
	if offer.MaxDiscount != nil && discount > *offer.MaxDiscount {
		discount = *offer.MaxDiscount
	}

	return &PromoValidation{
		Valid:    true,
		Discount: utils.Round2(discount),
		Offer:    &offer,
	}, nil
}

// UsePromoCode burns one use of the code. The increment runs server-side
// with the limit in the WHERE clause, so concurrent redemptions can
// neither lose updates nor blow past the usage limit.
func (s *PromoService) UsePromoCode(code string) (*models.PromoOffer, error) {
	return s.usePromoCodeTx(s.DB, code)
}

// usePromoCodeTx is UsePromoCode bound to a caller-supplied handle, so a
// redemption can join an enclosing transaction.
func (s *PromoService) usePromoCodeTx(tx *gorm.DB, code string) (*models.PromoOffer, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	res := tx.Model(&models.PromoOffer{}).
		Where("code = ? AND active = ?", code, true).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + ?", 1))
	if res.Error != nil {
		return nil, fmt.Errorf("redeem promo code: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("promo code %q: %w", code, ErrNotFound)
	}

	var offer models.PromoOffer
	if err := tx.Where("code = ?", code).First(&offer).Error; err != nil {
		return nil, fmt.Errorf("reload promo offer: %w", err)
	}
	return &offer, nil
}

// CreateOffer inserts a new promo offer; codes are stored uppercase.
func (s *PromoService) CreateOffer(offer *models.PromoOffer) error {
	offer.Code = strings.ToUpper(strings.TrimSpace(offer.Code))

	var count int64
	if err := s.DB.Model(&models.PromoOffer{}).Where("code = ?", offer.Code).Count(&count).Error; err != nil {
		return fmt.Errorf("check promo code: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("promo code %q already exists: %w", offer.Code, ErrDuplicatePromoCode)
	}

	if err := s.DB.Create(offer).Error; err != nil {
		return fmt.Errorf("create promo offer: %w", err)
	}
	return nil
}

func (s *PromoService) ListOffers(activeOnly bool) ([]models.PromoOffer, error) {
	q := s.DB.Order("valid_until DESC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var offers []models.PromoOffer
	if err := q.Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("list promo offers: %w", err)
	}
	return offers, nil
}

// DeactivateOffer retires an offer without deleting it.
func (s *PromoService) DeactivateOffer(id uint) error {
	res := s.DB.Model(&models.PromoOffer{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate promo offer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("promo offer %d: %w", id, ErrNotFound)
	}
	return nil
}
