// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"deepflood/internal/models"
	"deepflood/internal/persist"
	"deepflood/internal/reltime"
)

// CommentsStore owns the flat comment collection. The parent/child tree is
// derived on read via the parentId back-reference; there is no materialized
// tree, and with collections this small no index is kept between calls.
type CommentsStore struct {
	mu       sync.RWMutex
	comments []models.Comment
	persist  *persist.Store
}

// commentsState is the snapshot layout under the comments storage key.
type commentsState struct {
	Comments []models.Comment `json:"comments"`
}

// NewCommentsStore creates the comments store and loads any existing
// snapshot. A nil persist store disables mirroring (used by tests).
func NewCommentsStore(ctx context.Context, p *persist.Store) *CommentsStore {
	s := &CommentsStore{persist: p}
	if p != nil {
		var st commentsState
		if p.Load(ctx, persist.KeyComments, &st) {
			s.comments = st.Comments
		}
	}
	return s
}

// Add creates a comment from the submitted fields and appends it, so the
// collection stays in insertion order.
func (s *CommentsStore) Add(ctx context.Context, c models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.New()
	c.CreatedAt = reltime.JustNow
	c.UpdatedAt = reltime.JustNow
	c.Likes = 0
	c.LikedBy = []uuid.UUID{}

	s.comments = append(s.comments, c)
	s.snapshot(ctx)
	return c
}

// Update replaces the content of a comment and refreshes its updated-at
// label. Returns nil when absent.
func (s *CommentsStore) Update(ctx context.Context, id uuid.UUID, content string) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].Content = content
			s.comments[i].UpdatedAt = reltime.JustNow
			out := s.comments[i]
			s.snapshot(ctx)
			return &out
		}
	}
	return nil
}

// Delete removes a comment together with its direct replies. The cascade is
// a single level deep: replies of replies keep their parentId and become
// orphans. This matches the shipped behavior and is covered by a test; a
// deep cascade would be a behavior change, not a cleanup.
func (s *CommentsStore) Delete(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.ID == id {
			found = true
			continue
		}
		if c.IsReplyTo(id) {
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept

	if found {
		s.snapshot(ctx)
	}
	return found
}

// ByID retrieves a comment by id. Returns nil when absent.
func (s *CommentsStore) ByID(id uuid.UUID) *models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			out := s.comments[i]
			return &out
		}
	}
	return nil
}

// ByPostID returns the top-level comments of a post in insertion order.
// Replies are fetched separately per comment.
func (s *CommentsStore) ByPostID(postID uuid.UUID) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID && c.IsTopLevel() {
			out = append(out, c)
		}
	}
	return out
}

// RepliesByCommentID returns the direct replies of a comment in insertion
// order. It does not recurse; callers fetch deeper levels on demand.
func (s *CommentsStore) RepliesByCommentID(commentID uuid.UUID) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.IsReplyTo(commentID) {
			out = append(out, c)
		}
	}
	return out
}

// Like records userID's like on a comment. Membership in likedBy is
// idempotent: liking twice leaves the counter and set unchanged. Returns
// the updated comment, or nil when absent.
func (s *CommentsStore) Like(ctx context.Context, commentID, userID uuid.UUID) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID != commentID {
			continue
		}
		if !s.comments[i].LikedByUser(userID) {
			s.comments[i].Likes++
			s.comments[i].LikedBy = append(s.comments[i].LikedBy, userID)
			s.snapshot(ctx)
		}
		out := s.comments[i]
		return &out
	}
	return nil
}

// Unlike removes userID's like from a comment. A no-op when the user never
// liked it. Returns the updated comment, or nil when absent.
func (s *CommentsStore) Unlike(ctx context.Context, commentID, userID uuid.UUID) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID != commentID {
			continue
		}
		for j, liker := range s.comments[i].LikedBy {
			if liker == userID {
				s.comments[i].Likes--
				s.comments[i].LikedBy = append(s.comments[i].LikedBy[:j], s.comments[i].LikedBy[j+1:]...)
				s.snapshot(ctx)
				break
			}
		}
		out := s.comments[i]
		return &out
	}
	return nil
}

// Len reports the number of comments. Used by the seeder.
func (s *CommentsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments)
}

// snapshot mirrors the collection to Valkey. Callers hold the write lock.
func (s *CommentsStore) snapshot(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, persist.KeyComments, commentsState{Comments: s.comments}); err != nil {
		slog.Warn("comments snapshot failed", "error", err)
	}
}
