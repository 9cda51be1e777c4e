package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (yellow, warning icon)
	LevelWarning
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
// This provides a centralized way to handle user-facing notifications
// of different severity levels throughout the application.
type NotificationState struct {
	notifications []Notification
	nextID        int
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification with the specified level and message.
// The returned id lets callers dismiss this one notification later.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
	})
	return s.nextID
}

// Expire removes the notification with the given id. Ids already
// dismissed by a keypress are ignored.
func (s *NotificationState) Expire(id int) {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	// If window dimensions not set, can't position properly
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		notificationView := renderFunc(notification)
		notifWidth := lipgloss.Width(notificationView)
		notifHeight := lipgloss.Height(notificationView)

		col := s.windowWidth - notifWidth - 1
		if col < 0 {
			col = 0
		}
		if row+notifHeight >= s.windowHeight {
			// Don't render notifications that would go off screen
			break
		}

		layers = append(layers,
			lipgloss.NewLayer(notificationView).X(col).Y(row))
		row += notifHeight + 1
	}

	return layers
}
