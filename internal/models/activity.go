package models

import (
	"encoding/json"
	"time"
)

// ActivityDesign is the planning document a club files ahead of an activity.
type ActivityDesign struct {
	ID             int64           `json:"id"`
	ClubID         int64           `json:"club_id"`
	ReferenceCode  string          `json:"reference_code,omitempty"`
	NameOfActivity string          `json:"name_of_activity"`
	Venue          string          `json:"venue,omitempty"`
	Date           string          `json:"date,omitempty"`
	Rationale      string          `json:"rationale,omitempty"`
	Objectives     string          `json:"objectives,omitempty"`
	SourceOfFunds  string          `json:"source_of_funds,omitempty"`
	Budget         float64         `json:"budget,omitempty"`
	Status         string          `json:"status"`
	Remarks        json.RawMessage `json:"remarks,omitempty"`
	FiledByUserID  int64           `json:"filed_by_user_id,omitempty"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// ActivityDesignPage is a paginated activity design listing.
type ActivityDesignPage struct {
	PageMeta
	Data []ActivityDesign `json:"data"`
}

// UtilizationRequest books school facilities and equipment for an activity.
type UtilizationRequest struct {
	ID                 int64           `json:"id"`
	ClubID             int64           `json:"club_id"`
	ReferenceCode      string          `json:"reference_code,omitempty"`
	ActivityDesignID   *int64          `json:"activity_design_id,omitempty"`
	ActivityDesign     *ActivityDesign `json:"activity_design,omitempty"`
	Facilities         json.RawMessage `json:"facilities,omitempty"`
	EquipmentItems     json.RawMessage `json:"equipment_items,omitempty"`
	StartDate          string          `json:"start_date,omitempty"`
	StartTime          string          `json:"start_time,omitempty"`
	EndDate            string          `json:"end_date,omitempty"`
	EndTime            string          `json:"end_time,omitempty"`
	Status             string          `json:"status"`
	AvailabilityStatus string          `json:"availability_status,omitempty"`
	Remarks            json.RawMessage `json:"remarks,omitempty"`
	FiledByUserID      int64           `json:"filed_by_user_id,omitempty"`
	CreatedAt          *time.Time      `json:"created_at,omitempty"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

// UtilizationRequestPage is a paginated utilization request listing.
type UtilizationRequestPage struct {
	PageMeta
	Data []UtilizationRequest `json:"data"`
}

// LiquidationFund accounts for how an activity's funds were spent.
type LiquidationFund struct {
	ID               int64           `json:"id"`
	ClubID           int64           `json:"club_id"`
	ReferenceCode    string          `json:"reference_code,omitempty"`
	ActivityDesignID *int64          `json:"activity_design_id,omitempty"`
	ActivityDesign   *ActivityDesign `json:"activity_design,omitempty"`
	Expenses         json.RawMessage `json:"expenses,omitempty"`
	TotalAmount      float64         `json:"total_amount,omitempty"`
	Status           string          `json:"status"`
	Remarks          json.RawMessage `json:"remarks,omitempty"`
	FiledByUserID    int64           `json:"filed_by_user_id,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

// LiquidationFundPage is a paginated liquidation fund listing.
type LiquidationFundPage struct {
	PageMeta
	Data []LiquidationFund `json:"data"`
}

// Attachment is a supporting file on a filing.
type Attachment struct {
	ID        int64      `json:"id"`
	FileName  string     `json:"file_name,omitempty"`
	FileURL   string     `json:"file_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AvailabilityResult answers a facility availability probe.
type AvailabilityResult struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts,omitempty"`
}
