package models

import "time"

// Grievance is a complaint filed through the portal.
type Grievance struct {
	ID            int64      `json:"id"`
	ClubID        *int64     `json:"club_id,omitempty"`
	Subject       string     `json:"subject"`
	Details       string     `json:"details,omitempty"`
	Status        string     `json:"status"`
	Resolution    string     `json:"resolution,omitempty"`
	FiledByUserID int64      `json:"filed_by_user_id,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// GrievancePage is a paginated grievance listing.
type GrievancePage struct {
	PageMeta
	Data []Grievance `json:"data"`
}
