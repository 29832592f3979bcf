// Package progress persists which levels a player has completed and how
// they rated them.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vovakirdan/squarecontrol/internal/storage"
)

// Storage keys.
const (
	StateKey  = "levelState"
	RatingKey = "levelRating"
)

// Export is the full persisted progress.
type Export struct {
	Rating map[string]float64 `json:"rating"`
	State  map[string]bool    `json:"state"`
}

// Tracker reads and writes progress through a storage.KV.
// Read-modify-write cycles are serialized within one Tracker.
type Tracker struct {
	mu sync.Mutex
	kv storage.KV
}

// New creates a tracker backed by kv.
func New(kv storage.KV) *Tracker {
	return &Tracker{kv: kv}
}

// State returns the completion map keyed by level id.
func (t *Tracker) State(ctx context.Context) (map[string]bool, error) {
	state := make(map[string]bool)
	if err := t.load(ctx, StateKey, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// Completed reports whether the level was completed.
func (t *Tracker) Completed(ctx context.Context, levelID string) (bool, error) {
	state, err := t.State(ctx)
	if err != nil {
		return false, err
	}
	return state[levelID], nil
}

// MarkCompleted records levelID as completed.
func (t *Tracker) MarkCompleted(ctx context.Context, levelID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.State(ctx)
	if err != nil {
		return err
	}
	state[levelID] = true
	return t.store(ctx, StateKey, state)
}

// Ratings returns all ratings keyed by level id.
func (t *Tracker) Ratings(ctx context.Context) (map[string]float64, error) {
	ratings := make(map[string]float64)
	if err := t.load(ctx, RatingKey, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// Rating returns the rating of a level, or 0 if unrated.
func (t *Tracker) Rating(ctx context.Context, levelID string) (float64, error) {
	ratings, err := t.Ratings(ctx)
	if err != nil {
		return 0, err
	}
	return ratings[levelID], nil
}

// SetRating stores a rating for a level.
func (t *Tracker) SetRating(ctx context.Context, levelID string, rating float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ratings, err := t.Ratings(ctx)
	if err != nil {
		return err
	}
	ratings[levelID] = rating
	return t.store(ctx, RatingKey, ratings)
}

// Export returns completion state and ratings together.
func (t *Tracker) Export(ctx context.Context) (Export, error) {
	state, err := t.State(ctx)
	if err != nil {
		return Export{}, err
	}
	ratings, err := t.Ratings(ctx)
	if err != nil {
		return Export{}, err
	}
	return Export{Rating: ratings, State: state}, nil
}

// DeleteAll removes every stored rating and completion.
func (t *Tracker) DeleteAll(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.kv.Delete(ctx, RatingKey, StateKey); err != nil {
		return fmt.Errorf("progress: delete: %w", err)
	}
	return nil
}

func (t *Tracker) load(ctx context.Context, key string, into any) error {
	raw, ok, err := t.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("progress: load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("progress: decode %s: %w", key, err)
	}
	return nil
}

func (t *Tracker) store(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("progress: encode %s: %w", key, err)
	}
	if err := t.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("progress: save %s: %w", key, err)
	}
	return nil
}
