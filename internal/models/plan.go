package models

import (
	"encoding/json"
	"time"
)

// AnnualPlan is a club's schedule of activities for a school year.
type AnnualPlan struct {
	ID            int64           `json:"id"`
	ClubID        int64           `json:"club_id"`
	ReferenceCode string          `json:"reference_code,omitempty"`
	SchoolYear    string          `json:"school_year,omitempty"`
	Activities    json.RawMessage `json:"activities,omitempty"`
	Status        string          `json:"status"`
	Remarks       json.RawMessage `json:"remarks,omitempty"`
	FiledByUserID int64           `json:"filed_by_user_id,omitempty"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// AnnualPlanPage is a paginated annual plan listing.
type AnnualPlanPage struct {
	PageMeta
	Data []AnnualPlan `json:"data"`
}
