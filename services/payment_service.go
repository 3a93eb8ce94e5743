package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentService tracks payment attempts for bookings. There is no real
// gateway behind it; completion and failure arrive as simulated
// callbacks.
type PaymentService struct {
	DB       *gorm.DB
	Promos   *PromoService
	Notifier *NotificationService
}

func NewPaymentService(db *gorm.DB, promos *PromoService, notifier *NotificationService) *PaymentService {
	return &PaymentService{DB: db, Promos: promos, Notifier: notifier}
}

type CreatePaymentInput struct {
	BookingID uint
	Method    string
	PromoCode string // optional
	Details   map[string]interface{}
}

// CreatePayment opens a pending payment attempt for a booking. When a
// promo code is supplied and validates against the booking total, the
// discount is applied and the code redeemed exactly once, in the same
// transaction as the payment insert.
func (s *PaymentService) CreatePayment(in CreatePaymentInput) (*models.Payment, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, in.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", in.BookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking.Status == models.BookingCancelled {
		return nil, fmt.Errorf("booking %d is cancelled: %w", booking.ID, ErrInvalidStatus)
	}

	amount := booking.TotalAmount
	details := in.Details
	if details == nil {
		details = map[string]interface{}{}
	}

	if in.PromoCode != "" {
		validation, err := s.Promos.ValidatePromoCode(in.PromoCode, amount)
		if err != nil {
			return nil, err
		}
		if !validation.Valid {
			return nil, fmt.Errorf("promo code rejected (%s): %w", validation.Reason, ErrValidation)
		}
		amount = utils.Round2(amount - validation.Discount)
		details["promo_code"] = validation.Offer.Code
		details["promo_discount"] = validation.Discount
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode payment details: %w", err)
	}

	ref := utils.NewTransactionRef()
	payment := &models.Payment{
		BookingID:      booking.ID,
		Amount:         amount,
		Method:         in.Method,
		Status:         models.PaymentPending,
		TransactionRef: &ref,
		Details:        datatypes.JSON(raw),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if in.PromoCode != "" {
			if _, err := s.Promos.usePromoCodeTx(tx, in.PromoCode); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return payment, nil
}

// CompletePayment records a successful gateway callback and confirms
// the booking if it is still pending.
func (s *PaymentService) CompletePayment(id uint) (*models.Payment, error) {
	payment, err := s.getPayment(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentPending {
		return nil, fmt.Errorf("payment %d is %q, not pending: %w", id, payment.Status, ErrInvalidStatus)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(payment).Update("status", models.PaymentCompleted).Error; err != nil {
			return fmt.Errorf("complete payment %d: %w", id, err)
		}
		var booking models.Booking
		if err := tx.First(&booking, payment.BookingID).Error; err != nil {
			return fmt.Errorf("load booking %d: %w", payment.BookingID, err)
		}
		if booking.Status == models.BookingPending {
			if err := tx.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
				return fmt.Errorf("confirm booking %d: %w", booking.ID, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	payment.Status = models.PaymentCompleted

	if s.Notifier != nil {
		var booking models.Booking
		if err := s.DB.First(&booking, payment.BookingID).Error; err == nil {
			s.Notifier.NotifyPaymentCompleted(payment, &booking)
		}
	}
	return payment, nil
}

// FailPayment records a failed gateway callback. The booking stays
// pending; another attempt may follow.
func (s *PaymentService) FailPayment(id uint, reason string) (*models.Payment, error) {
	payment, err := s.getPayment(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentPending {
		return nil, fmt.Errorf("payment %d is %q, not pending: %w", id, payment.Status, ErrInvalidStatus)
	}

	updates := map[string]interface{}{"status": models.PaymentFailed}
	if reason != "" {
		raw, mErr := json.Marshal(map[string]string{"failure_reason": reason})
		if mErr == nil {
			updates["details"] = datatypes.JSON(raw)
		}
	}
	if err := s.DB.Model(payment).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("fail payment %d: %w", id, err)
	}
	payment.Status = models.PaymentFailed
	return payment, nil
}

// RefundPayment refunds a completed payment. The amount must be
// positive and no more than what was originally charged.
func (s *PaymentService) RefundPayment(id uint, amount float64) (*models.Payment, error) {
	payment, err := s.getPayment(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentCompleted {
		return nil, fmt.Errorf("payment %d is %q, only completed payments can be refunded: %w",
			id, payment.Status, ErrInvalidStatus)
	}
	if amount <= 0 || amount > payment.Amount {
		return nil, fmt.Errorf("refund of %.2f against charge of %.2f: %w",
			amount, payment.Amount, ErrInvalidRefundAmount)
	}

	if err := s.DB.Model(payment).Update("status", models.PaymentRefunded).Error; err != nil {
		return nil, fmt.Errorf("refund payment %d: %w", id, err)
	}
	payment.Status = models.PaymentRefunded
	return payment, nil
}

// ListForBooking returns all payment attempts for a booking, oldest first.
func (s *PaymentService) ListForBooking(bookingID uint) ([]models.Payment, error) {
	var list []models.Payment
	if err := s.DB.Where("booking_id = ?", bookingID).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}

func (s *PaymentService) getPayment(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load payment: %w", err)
	}
	return &payment, nil
}
