package models

import "time"

// Notification is a portal notification addressed to a user.
type Notification struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	ClubID      *int64     `json:"club_id,omitempty"`
	SubjectType string     `json:"subject_type,omitempty"`
	SubjectID   *int64     `json:"subject_id,omitempty"`
	Title       string     `json:"title"`
	Body        string     `json:"body,omitempty"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// NotificationPage is a paginated notification listing.
type NotificationPage struct {
	PageMeta
	Data []Notification `json:"data"`
}

// NotificationStats is the badge counter answer of /notifications/_stats.
type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}
