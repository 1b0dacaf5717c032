// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Snapshot keys, one per store. The names match the storage keys the web
// client used, so state written by either implementation loads in the other.
const (
	KeyPosts    = "posts-storage"
	KeyComments = "comments-storage"
	KeyAuth     = "auth-storage"
)

// envelope is the on-wire document: the store state nested under "state".
type envelope struct {
	State json.RawMessage `json:"state"`
}

// Store saves and loads named state snapshots. All operations fail soft:
// loads of absent or unparseable data report a miss instead of an error,
// and callers fall back to their default collections.
type Store struct {
	client *redis.Client
}

// NewStore creates a snapshot store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save serializes state into the {"state": ...} envelope and writes it
// under key. Snapshots have no TTL; they live until overwritten or deleted.
func (s *Store) Save(ctx context.Context, key string, state any) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("persist marshal %s: %w", key, err)
	}

	doc, err := json.Marshal(envelope{State: raw})
	if err != nil {
		return fmt.Errorf("persist envelope %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, doc, 0).Err(); err != nil {
		return fmt.Errorf("persist save %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot at key into state. Returns false — leaving state
// untouched — when the key is absent, unreadable, or holds data that does
// not decode. Never returns an error to the caller.
func (s *Store) Load(ctx context.Context, key string, state any) bool {
	doc, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Warn("persist load failed", "key", key, "error", err)
		return false
	}

	return DecodeSnapshot(doc, state)
}

// Delete removes the snapshot at key. Used when the auth store logs out.
func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("persist delete failed", "key", key, "error", err)
	}
}

// DecodeSnapshot unwraps a {"state": ...} document into state. Returns
// false on any malformed input.
func DecodeSnapshot(doc []byte, state any) bool {
	var env envelope
	if err := json.Unmarshal(doc, &env); err != nil {
		slog.Warn("persist snapshot unparseable", "error", err)
		return false
	}
	if env.State == nil {
		return false
	}
	if err := json.Unmarshal(env.State, state); err != nil {
		slog.Warn("persist snapshot state unparseable", "error", err)
		return false
	}
	return true
}
