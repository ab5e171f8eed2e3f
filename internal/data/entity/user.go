package entity

// MaxNotifications caps the per-user notification feed; the oldest entry is
// evicted when a push would exceed it.
const MaxNotifications = 20

type User struct {
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	Password      string   `db:"password"` // bcrypt hash
	BookingIDs    []string `db:"booking_ids"`
	Notifications []string `db:"notifications"`
}

// PushNotification appends a message to the feed, evicting the oldest entries
// beyond MaxNotifications.
func (u *User) PushNotification(message string) {
	u.Notifications = append(u.Notifications, message)
	if overflow := len(u.Notifications) - MaxNotifications; overflow > 0 {
		u.Notifications = u.Notifications[overflow:]
	}
}

// NotificationsNewestFirst returns a reversed copy of the feed for display.
func (u *User) NotificationsNewestFirst() []string {
	reversed := make([]string, len(u.Notifications))
	for i, n := range u.Notifications {
		reversed[len(u.Notifications)-1-i] = n
	}
	return reversed
}
