package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionModel struct {
	Key       string    `gorm:"column:session_key;primaryKey;size:128"`
	Payload   []byte    `gorm:"column:payload;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "wizard_sessions" }

// GormStore keeps sessions in the wizard_sessions table.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&sessionModel{}); err != nil {
		return fmt.Errorf("migrate wizard_sessions: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m sessionModel
	err := s.db.WithContext(ctx).
		Where("session_key = ? AND expires_at > ?", key, s.now().UTC()).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return m.Payload, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now().UTC()
	m := sessionModel{
		Key:       key,
		Payload:   value,
		ExpiresAt: now.Add(ttl),
		UpdatedAt: now,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
		}).
		Create(&m).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("session_key = ?", key).
		Delete(&sessionModel{}).Error
}

// PurgeExpired removes every expired session and returns how many were deleted.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now().UTC()).
		Delete(&sessionModel{})
	return res.RowsAffected, res.Error
}
