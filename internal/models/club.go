package models

import "time"

// Club is a registered student club or organization.
type Club struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Acronym     string     `json:"acronym,omitempty"`
	Description string     `json:"description,omitempty"`
	Logo        *string    `json:"logo,omitempty"`
	Banner      *string    `json:"banner,omitempty"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`

	// Populated on /users/{id}/clubs responses.
	Membership *ClubMembership `json:"membership,omitempty"`
}

// ClubMembership is the relationship between a user and a club. Role is a
// free-form title ("President", "member", ...).
type ClubMembership struct {
	UserID int64  `json:"user_id,omitempty"`
	ClubID int64  `json:"club_id,omitempty"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ClubPage is a paginated club listing.
type ClubPage struct {
	PageMeta
	Data []Club `json:"data"`
}

// UserClubs is the upstream response shape of GET /users/{id}/clubs.
type UserClubs struct {
	Clubs []Club `json:"clubs"`
}

// ClubDoc is a document attached to a club (constitutions, resolutions...).
type ClubDoc struct {
	ID        int64      `json:"id"`
	ClubID    int64      `json:"club_id"`
	Title     string     `json:"title"`
	DocType   string     `json:"doc_type,omitempty"`
	FileURL   string     `json:"file_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ClubDocPage is a paginated club document listing.
type ClubDocPage struct {
	PageMeta
	Data []ClubDoc `json:"data"`
}
