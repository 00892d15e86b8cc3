// Package notifications implements the transient notification surface:
// per-user stacks of auto-expiring toast messages.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TTL is the lifetime of one notification. Each entry expires independently
// on its own timer.
const TTL = 3000 * time.Millisecond

const keyPrefix = "notifications:"

var ErrNotFound = errors.New("Notification not found")

// Kind values accepted by Show.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindInfo    = "info"
)

// Notification is one dismissible, auto-expiring entry. IDs are unique
// across all notifications.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service stores notifications in a per-user Redis sorted set scored by
// expiry time in ms; reads prune expired members first.
type Service struct {
	Rdb *redis.Client
	Now func() time.Time // override in tests; nil means time.Now
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validKind(kind string) string {
	switch kind {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return kind
	}
	return KindSuccess
}

// Show creates one notification for the user. No-op without Redis so callers
// degrade instead of failing.
func (s *Service) Show(ctx context.Context, userID, message, kind string) error {
	if s.Rdb == nil || userID == "" {
		return nil
	}
	now := s.now()
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      validKind(kind),
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := keyPrefix + userID
	if err := s.Rdb.ZAdd(ctx, key, redis.Z{
		Score:  float64(n.ExpiresAt.UnixMilli()),
		Member: string(b),
	}).Err(); err != nil {
		return err
	}
	// Key-level expiry is only housekeeping; per-entry expiry is the score.
	s.Rdb.Expire(ctx, key, TTL+time.Minute)
	return nil
}

// List returns the user's live notifications in creation order, pruning
// anything whose timer has elapsed.
func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	if s.Rdb == nil {
		return []Notification{}, nil
	}
	key := keyPrefix + userID
	nowMs := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.Rdb.ZRemRangeByScore(ctx, key, "-inf", nowMs).Err(); err != nil {
		return nil, err
	}
	members, err := s.Rdb.ZRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(members))
	for _, m := range members {
		raw, ok := m.Member.(string)
		if !ok {
			continue
		}
		var n Notification
		if json.Unmarshal([]byte(raw), &n) == nil {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Dismiss removes one notification by id before its timer elapses.
func (s *Service) Dismiss(ctx context.Context, userID, id string) error {
	if s.Rdb == nil {
		return ErrNotFound
	}
	key := keyPrefix + userID
	members, err := s.Rdb.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return err
	}
	for _, raw := range members {
		var n Notification
		if json.Unmarshal([]byte(raw), &n) == nil && n.ID == id {
			return s.Rdb.ZRem(ctx, key, raw).Err()
		}
	}
	return ErrNotFound
}
