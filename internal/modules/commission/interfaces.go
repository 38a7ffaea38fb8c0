package commission

import (
	"context"
	"time"

	"crochetstudio/internal/domain"
)

type SlotRepository interface {
	List(ctx context.Context) ([]domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

type SessionRepository interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, s *State) error
	Delete(ctx context.Context, id string) error
}

type TokenIssuer interface {
	GenerateToken(sessionID, flow string) (string, error)
	IssueToken(sessionID, flow string) (string, time.Time, error)
	SessionFor(token, flow string) (string, error)
	TTL() time.Duration
}
