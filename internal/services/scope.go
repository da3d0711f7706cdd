package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// scopeRecord pins a session to its currently selected club.
type scopeRecord struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	ClubID    int64     `gorm:"column:club_id"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (scopeRecord) TableName() string {
	return "club_scopes"
}

// ScopeService remembers which club a user is working in so listings and
// filings default to it across page loads. Scope follows the session, not the
// user: two browsers may work in different clubs at once.
type ScopeService struct {
	db *gorm.DB
}

func NewScopeService(db *gorm.DB) (*ScopeService, error) {
	if err := db.AutoMigrate(&scopeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate club scope store: %w", err)
	}
	return &ScopeService{db: db}, nil
}

// Set records the active club for a session.
func (s *ScopeService) Set(ctx context.Context, sessionID string, clubID int64) error {
	rec := scopeRecord{SessionID: sessionID, ClubID: clubID}
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to store club scope: %w", err)
	}
	return nil
}

// Get returns the session's active club id, or zero when none is set.
func (s *ScopeService) Get(ctx context.Context, sessionID string) (int64, error) {
	var rec scopeRecord
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch club scope: %w", err)
	}
	return rec.ClubID, nil
}

// Clear forgets the session's club selection.
func (s *ScopeService) Clear(ctx context.Context, sessionID string) error {
	err := s.db.WithContext(ctx).Delete(&scopeRecord{}, "session_id = ?", sessionID).Error
	if err != nil {
		return fmt.Errorf("failed to clear club scope: %w", err)
	}
	return nil
}
