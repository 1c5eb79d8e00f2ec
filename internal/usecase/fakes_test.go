package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"matrimony-service/internal/domain"
	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/xerrors"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) SetJSON(_ context.Context, ns, k string, v interface{}, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[ns+":"+k] = b
	return nil
}

func (c *memCache) GetJSON(_ context.Context, ns, k string, dst interface{}) error {
	c.mu.Lock()
	b, ok := c.data[ns+":"+k]
	c.mu.Unlock()
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(b, dst)
}

func (c *memCache) Delete(_ context.Context, ns, k string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, ns+":"+k)
	c.deleted = append(c.deleted, ns+":"+k)
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type fakeSubRepo struct {
	subs  map[string]*domain.Subscription
	err   error
	calls int
}

func (r *fakeSubRepo) GetByUserID(_ context.Context, userID string) (*domain.Subscription, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.subs[userID]
	if !ok {
		return nil, xerrors.ErrSubscriptionNotFound
	}
	return s, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	err      error
	gets     int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, xerrors.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, userID string, rec domain.ProfileRecord) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p := &domain.Profile{ID: "p-" + userID, UserID: userID, Record: rec}
	r.profiles[userID] = p
	return p, nil
}

type fakePublisher struct {
	events []domain.ProfileUpdatedEvent
	err    error
}

func (p *fakePublisher) PublishProfileUpdated(_ context.Context, evt domain.ProfileUpdatedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func sp(s string) *string { return &s }
