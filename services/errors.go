package services

import "errors"

// Error taxonomy surfaced to controllers. Wrap with fmt.Errorf("...: %w", err)
// so callers can dispatch via errors.Is.
var (
	ErrNotFound                = errors.New("not_found")
	ErrInvalidDateRange        = errors.New("invalid_date_range")
	ErrCapacityExceeded        = errors.New("capacity_exceeded")
	ErrNoAvailability          = errors.New("no_availability")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrInvalidStatus           = errors.New("invalid_status")
	ErrRoomTypeMismatch        = errors.New("room_type_mismatch")
	ErrDuplicateEmail          = errors.New("duplicate_email")
	ErrInvalidCredentials      = errors.New("invalid_credentials")
	ErrInvalidRefundAmount     = errors.New("invalid_refund_amount")
	ErrDuplicateRoomNumber     = errors.New("duplicate_room_number")
	ErrValidation              = errors.New("validation_failed")
	ErrDuplicatePromoCode      = errors.New("duplicate_promo_code")
)
