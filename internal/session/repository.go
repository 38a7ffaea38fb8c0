package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Repository stores values of one wizard type as JSON under "<flow>:<id>".
type Repository[T any] struct {
	store Store
	flow  string
	ttl   time.Duration
}

func NewRepository[T any](store Store, flow string, ttl time.Duration) *Repository[T] {
	return &Repository[T]{store: store, flow: flow, ttl: ttl}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

func (r *Repository[T]) Load(ctx context.Context, id string) (*T, error) {
	raw, ok, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		return nil, fmt.Errorf("load %s session: %w", r.flow, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s session: %w", r.flow, err)
	}
	return &v, nil
}

func (r *Repository[T]) Save(ctx context.Context, id string, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s session: %w", r.flow, err)
	}
	if err := r.store.Set(ctx, r.key(id), raw, r.ttl); err != nil {
		return fmt.Errorf("save %s session: %w", r.flow, err)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.key(id)); err != nil {
		return fmt.Errorf("delete %s session: %w", r.flow, err)
	}
	return nil
}

func (r *Repository[T]) key(id string) string {
	return r.flow + ":" + id
}
