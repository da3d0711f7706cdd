package models

import "time"

// SessionLog is one request audit row as served by the upstream API.
type SessionLog struct {
	ID        int64      `json:"id"`
	RequestID string     `json:"request_id,omitempty"`
	UserID    *int64     `json:"user_id,omitempty"`
	UserRole  string     `json:"user_role,omitempty"`
	Method    string     `json:"method,omitempty"`
	Path      string     `json:"path,omitempty"`
	Status    int        `json:"status,omitempty"`
	IP        string     `json:"ip,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SessionLogPage is a paginated session log listing.
type SessionLogPage struct {
	PageMeta
	Data []SessionLog `json:"data"`
}
