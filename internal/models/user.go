package models

import "time"

// User is the portal user record as served by the upstream API.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Avatar       *string    `json:"avatar,omitempty"`
	Cover        *string    `json:"cover,omitempty"`
	TwoFAEnabled bool       `json:"twoFAEnabled"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PageMeta is the shared pagination envelope for upstream list responses.
type PageMeta struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// UserPage is a paginated user listing.
type UserPage struct {
	PageMeta
	Data []User `json:"data"`
}
