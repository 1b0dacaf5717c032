// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the authoritative in-memory entity collections and
// their accessor/mutator operations. Mutations are synchronous and
// immediately visible to subsequent reads; after every mutation the owning
// store snapshots its collections to Valkey. Snapshot failures are logged
// and never abort the mutation — persistence is a mirror, not a gate.
package store

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"deepflood/internal/models"
	"deepflood/internal/persist"
	"deepflood/internal/reltime"
)

// PostsStore owns the post and draft collections.
type PostsStore struct {
	mu      sync.RWMutex
	posts   []models.Post
	drafts  []models.Post
	persist *persist.Store

	// now anchors the effective-timestamp heuristic. It is re-evaluated on
	// every sort, so the derived order can shift between calls — the labels
	// are display strings, not real timestamps. Overridable in tests.
	now func() time.Time
}

// postsState is the snapshot layout under the posts storage key.
type postsState struct {
	Posts  []models.Post `json:"posts"`
	Drafts []models.Post `json:"drafts"`
}

// NewPostsStore creates the posts store and loads any existing snapshot.
// A nil persist store disables mirroring (used by tests).
func NewPostsStore(ctx context.Context, p *persist.Store) *PostsStore {
	s := &PostsStore{persist: p, now: time.Now}
	if p != nil {
		var st postsState
		if p.Load(ctx, persist.KeyPosts, &st) {
			s.posts = st.Posts
			s.drafts = st.Drafts
		}
	}
	return s
}

// Add creates a post from the submitted fields, stamps it as fresh, and
// prepends it so insertion order doubles as recency within equal labels.
func (s *PostsStore) Add(ctx context.Context, p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = reltime.JustNow
	p.UpdatedAt = reltime.JustNow
	p.ReplyCount = 0
	p.ViewCount = 0
	p.IsDraft = false

	s.posts = append([]models.Post{p}, s.posts...)
	s.snapshot(ctx)
	return p
}

// PostUpdate carries the mutable fields of a post edit. Nil pointers leave
// the corresponding field unchanged.
type PostUpdate struct {
	Title    *string
	Content  *string
	Topic    *string
	IsSticky *bool
}

// Update applies upd to the post with the given id and refreshes its
// updated-at label. Returns nil when no such post exists.
func (s *PostsStore) Update(ctx context.Context, id uuid.UUID, upd PostUpdate) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.posts[i].Title = *upd.Title
		}
		if upd.Content != nil {
			s.posts[i].Content = *upd.Content
		}
		if upd.Topic != nil {
			s.posts[i].Topic = *upd.Topic
		}
		if upd.IsSticky != nil {
			s.posts[i].IsSticky = *upd.IsSticky
		}
		s.posts[i].UpdatedAt = reltime.JustNow

		out := s.posts[i]
		s.snapshot(ctx)
		return &out
	}
	return nil
}

// Delete removes the post with the given id. Reports whether it existed.
func (s *PostsStore) Delete(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.snapshot(ctx)
			return true
		}
	}
	return false
}

// ByID retrieves a post by id. Returns nil when absent.
func (s *PostsStore) ByID(id uuid.UUID) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			out := s.posts[i]
			return &out
		}
	}
	return nil
}

// ByTopic returns the posts of a category slug in stored order.
func (s *PostsStore) ByTopic(topic string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.Topic == topic {
			out = append(out, p)
		}
	}
	return out
}

// IncrementViewCount bumps the view counter of a post and returns the
// updated record, or nil when absent.
func (s *PostsStore) IncrementViewCount(ctx context.Context, id uuid.UUID) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ViewCount++
			out := s.posts[i]
			s.snapshot(ctx)
			return &out
		}
	}
	return nil
}

// IncrementReplyCount bumps the reply counter of a post. A no-op when the
// post is absent (the comment may outlive a deleted post).
func (s *PostsStore) IncrementReplyCount(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ReplyCount++
			s.snapshot(ctx)
			return
		}
	}
}

// List returns all posts in listing order: sticky posts first, then by
// effective timestamp descending. The sort is stable, so records with equal
// derived instants keep insertion order.
func (s *PostsStore) List() []models.Post {
	s.mu.RLock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	s.mu.RUnlock()

	now := s.now()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsSticky != out[j].IsSticky {
			return out[i].IsSticky
		}
		ti := reltime.EffectiveTime(out[i].CreatedAt, now)
		tj := reltime.EffectiveTime(out[j].CreatedAt, now)
		return ti.After(tj)
	})
	return out
}

// Search returns all posts containing query as a case-insensitive substring
// of title, content, author name, or topic slug. An empty or whitespace-only
// query yields no results. Title matches rank before matches found only in
// other fields; within each partition ordering follows the effective
// timestamp descending.
func (s *PostsStore) Search(query string) []models.Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Post{}
	}

	s.mu.RLock()
	matches := make([]models.Post, 0)
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Content), q) ||
			strings.Contains(strings.ToLower(p.Author.Name), q) ||
			strings.Contains(strings.ToLower(p.Topic), q) {
			matches = append(matches, p)
		}
	}
	s.mu.RUnlock()

	now := s.now()
	inTitle := func(p models.Post) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ti, tj := inTitle(matches[i]), inTitle(matches[j])
		if ti != tj {
			return ti
		}
		return reltime.EffectiveTime(matches[i].CreatedAt, now).
			After(reltime.EffectiveTime(matches[j].CreatedAt, now))
	})
	return matches
}

// SaveDraft stores a draft post for later editing.
func (s *PostsStore) SaveDraft(ctx context.Context, p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = reltime.JustNow
	p.UpdatedAt = reltime.JustNow
	p.ReplyCount = 0
	p.ViewCount = 0
	p.IsDraft = true

	s.drafts = append([]models.Post{p}, s.drafts...)
	s.snapshot(ctx)
	return p
}

// DeleteDraft removes a draft by id. Reports whether it existed.
func (s *PostsStore) DeleteDraft(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drafts {
		if s.drafts[i].ID == id {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			s.snapshot(ctx)
			return true
		}
	}
	return false
}

// Drafts returns the draft collection in stored order.
func (s *PostsStore) Drafts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.drafts))
	copy(out, s.drafts)
	return out
}

// Len reports the number of posts. Used by the seeder to detect prior data.
func (s *PostsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// snapshot mirrors the collections to Valkey. Callers hold the write lock.
func (s *PostsStore) snapshot(ctx context.Context) {
	if s.persist == nil {
		return
	}
	st := postsState{Posts: s.posts, Drafts: s.drafts}
	if err := s.persist.Save(ctx, persist.KeyPosts, st); err != nil {
		slog.Warn("posts snapshot failed", "error", err)
	}
}
