package store

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType classifies a toast.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is a transient user-facing message. Auto-dismiss timing is a
// rendering concern; the store only appends and removes.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// AddNotification appends a notification and returns its generated id.
func (s *Store) AddNotification(kind NotificationType, title, message string) string {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.publish(EventNotifications)
	s.mu.Unlock()
	return n.ID
}

// RemoveNotification drops the notification with the given id, if present.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
	s.publish(EventNotifications)
}

// Notifications returns a copy of the pending notifications.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// FormatMoney renders an amount with the configured currency code.
func (s *Store) FormatMoney(amount decimal.Decimal) string {
	return s.currency + " " + amount.StringFixed(2)
}

// userMessage extracts the message to show the user for a failed call: the
// backend's detail when it sent one, the structured message otherwise, and a
// generic fallback for anything else.
func userMessage(err error) string {
	if detail := errors.Detail(err); detail != "" {
		return detail
	}
	var mapoErr *errors.MapoError
	if stderrors.As(err, &mapoErr) {
		return mapoErr.Message
	}
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return "Algo salió mal, intenta de nuevo"
}
