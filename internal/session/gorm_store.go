package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"osas/clubport/internal/logging"
)

// Record is the durable session row. The payload is stored as opaque JSON so
// schema changes in Session never need a migration.
type Record struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Payload   []byte    `gorm:"column:payload"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Record) TableName() string {
	return "sessions"
}

// GormStore persists sessions in a relational database (sqlite for local
// runs and tests, postgres in production).
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	rec := Record{ID: sess.ID, Payload: data, ExpiresAt: sess.ExpiresAt}
	err = s.db.WithContext(ctx).Save(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*Session, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(rec.Payload, &sess); err != nil {
		logging.Warn("discarding undecodable session payload", "session_id", id, "error", err.Error())
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}

	if sess.Expired(time.Now()) {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Delete(&Record{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SweepExpired removes every session past its expiry and returns how many
// rows were deleted.
func (s *GormStore) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&Record{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
