package cache

import (
	"context"
	"time"
)

const DefaultTTL = 5 * time.Minute

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
}

type Status struct {
	Backend string `json:"backend"`
	Entries int    `json:"entries"`
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoopCache) Clear(ctx context.Context) error {
	return nil
}

func (n *NoopCache) Status(ctx context.Context) (Status, error) {
	return Status{Backend: "noop"}, nil
}
