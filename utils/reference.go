package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference returns a short human-readable booking code,
// e.g. "BK-9F27C41A".
func NewBookingReference() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}

// NewTransactionRef returns a full uuid used as a payment transaction
// reference.
func NewTransactionRef() string {
	return uuid.New().String()
}
