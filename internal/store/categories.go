// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"sync"

	"deepflood/internal/models"
)

// CategoriesStore owns the category collection. Categories come from the
// seed fixture set and are mutated only through explicit stat updates, so
// the store keeps them in memory without a snapshot mirror.
type CategoriesStore struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewCategoriesStore creates the store with the given seed categories.
func NewCategoriesStore(seed []models.Category) *CategoriesStore {
	return &CategoriesStore{categories: seed}
}

// All returns the categories in seed order.
func (s *CategoriesStore) All() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// BySlug retrieves a category by its slug. Returns nil when absent.
func (s *CategoriesStore) BySlug(slug string) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].Slug == slug {
			out := s.categories[i]
			return &out
		}
	}
	return nil
}

// Stats returns the counters of a category, or zero counters when the slug
// is unknown.
func (s *CategoriesStore) Stats(slug string) models.CategoryStats {
	c := s.BySlug(slug)
	if c == nil {
		return models.CategoryStats{}
	}
	return c.Stats()
}

// StatsUpdate carries partial counter updates. Nil pointers leave the
// corresponding counter unchanged.
type StatsUpdate struct {
	PostCount      *int
	MemberCount    *int
	TodayPostCount *int
}

// UpdateStats applies a partial counter update to the category with the
// given slug. A no-op when the slug is unknown.
func (s *CategoriesStore) UpdateStats(slug string, upd StatsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].Slug != slug {
			continue
		}
		if upd.PostCount != nil {
			s.categories[i].PostCount = *upd.PostCount
		}
		if upd.MemberCount != nil {
			s.categories[i].MemberCount = *upd.MemberCount
		}
		if upd.TodayPostCount != nil {
			s.categories[i].TodayPostCount = *upd.TodayPostCount
		}
		return
	}
}

// RecordNewPost bumps the post counters of a category after a successful
// post creation. A no-op when the slug is unknown — the topic reference is
// soft and never enforced.
func (s *CategoriesStore) RecordNewPost(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].Slug == slug {
			s.categories[i].PostCount++
			s.categories[i].TodayPostCount++
			return
		}
	}
}
