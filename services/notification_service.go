package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// NotificationService records pending notifications for booking events.
// There is no real delivery backend: the email channel logs the message
// and the record moves pending -> sent via MarkSent.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) create(n *models.Notification) {
	n.Status = models.NotificationPending
	if err := s.DB.Create(n).Error; err != nil {
		// Notifications are best-effort; never fail the booking flow.
		log.Printf("warning: failed to create notification: %v", err)
	}
}

func (s *NotificationService) NotifyBookingCreated(b *models.Booking, u *models.User) {
	s.create(&models.Notification{
		UserID:    b.UserID,
		BookingID: &b.ID,
		Channel:   models.ChannelEmail,
		Title:     "Booking received",
		Message: fmt.Sprintf("Hi %s, we received your booking %s for %s to %s.",
			u.FullName, b.ReferenceCode,
			b.CheckIn.Format(utils.DateLayout), b.CheckOut.Format(utils.DateLayout)),
	})
}

func (s *NotificationService) NotifyBookingConfirmed(b *models.Booking) {
	s.create(&models.Notification{
		UserID:    b.UserID,
		BookingID: &b.ID,
		Channel:   models.ChannelEmail,
		Title:     "Booking confirmed",
		Message:   fmt.Sprintf("Your booking %s is confirmed.", b.ReferenceCode),
	})
}

func (s *NotificationService) NotifyBookingCancelled(b *models.Booking) {
	s.create(&models.Notification{
		UserID:    b.UserID,
		BookingID: &b.ID,
		Channel:   models.ChannelInApp,
		Title:     "Booking cancelled",
		Message:   fmt.Sprintf("Your booking %s has been cancelled.", b.ReferenceCode),
	})
}

func (s *NotificationService) NotifyPaymentCompleted(p *models.Payment, b *models.Booking) {
	s.create(&models.Notification{
		UserID:    b.UserID,
		BookingID: &b.ID,
		Channel:   models.ChannelEmail,
		Title:     "Payment received",
		Message:   fmt.Sprintf("We received your payment of %.2f for booking %s.", p.Amount, b.ReferenceCode),
	})
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var list []models.Notification
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// MarkSent stamps a pending notification as sent. The email channel
// only logs; there is no real delivery here.
func (s *NotificationService) MarkSent(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.DB.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load notification: %w", err)
	}
	if n.Status == models.NotificationSent {
		return &n, nil
	}

	if n.Channel == models.ChannelEmail {
		log.Printf("email to user %d: %s: %s", n.UserID, n.Title, n.Message)
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&n).Updates(map[string]interface{}{
		"status":  models.NotificationSent,
		"sent_at": now,
	}).Error; err != nil {
		return nil, fmt.Errorf("mark notification %d sent: %w", id, err)
	}
	n.Status = models.NotificationSent
	n.SentAt = &now
	return &n, nil
}
