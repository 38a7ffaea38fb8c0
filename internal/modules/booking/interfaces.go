package booking

import (
	"context"
	"time"

	"crochetstudio/internal/domain"
)

// ItemRepository reads the catalog designs offered in the wizard.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	GetItemByID(ctx context.Context, id int64) (*domain.CatalogItem, error)
}

type SlotRepository interface {
	List(ctx context.Context) ([]domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// SessionRepository keeps in-progress wizard state.
type SessionRepository interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, s *State) error
	Delete(ctx context.Context, id string) error
}

// TokenIssuer binds wizard sessions to signed tokens.
type TokenIssuer interface {
	GenerateToken(sessionID, flow string) (string, error)
	IssueToken(sessionID, flow string) (string, time.Time, error)
	SessionFor(token, flow string) (string, error)
	TTL() time.Duration
}
