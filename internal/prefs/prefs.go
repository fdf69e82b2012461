// Package prefs persists the dashboard's appearance preferences as a
// single JSON blob under one fixed key. It is read once at startup and
// written whenever the consumer changes it; nothing else depends on it.
package prefs

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

const prefsKey = "pharmatrack:prefs:appearance"

type Preferences struct {
	Theme    string `json:"theme"`
	Compact  bool   `json:"compact"`
	PageSize int    `json:"page_size"`
}

// Defaults returns the preferences used when nothing has been saved yet.
func Defaults() Preferences {
	return Preferences{Theme: "light", PageSize: 20}
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load reads the stored blob, falling back to defaults when the key is
// absent or the blob does not parse.
func (s *Store) Load(ctx context.Context) (Preferences, error) {
	raw, err := s.rdb.Get(ctx, prefsKey).Result()
	if err == redis.Nil {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), err
	}
	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Defaults(), nil
	}
	return p, nil
}

func (s *Store) Save(ctx context.Context, p Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, prefsKey, raw, 0).Err()
}
