// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"deepflood/internal/level"
	"deepflood/internal/models"
	"deepflood/internal/persist"
)

// mockAuthDelay is the artificial latency on login and register, standing in
// for the round-trip a real credential backend would cost.
const mockAuthDelay = 1 * time.Second

// UsersStore manages the single authenticated account of a session.
//
// Authentication is simulated: login and register accept arbitrary
// credentials and fabricate the account record. The supplied password is
// bcrypt-hashed into the record but never verified against anything — there
// is no credential store and no uniqueness check on email or username.
type UsersStore struct {
	mu      sync.RWMutex
	user    *models.User
	persist *persist.Store

	now   func() time.Time
	delay time.Duration
}

// authState is the snapshot layout under the auth storage key.
type authState struct {
	User *models.User `json:"user"`
}

// NewUsersStore creates the store and loads a previously persisted account,
// if any. A nil persist store disables mirroring (used by tests).
func NewUsersStore(ctx context.Context, p *persist.Store) *UsersStore {
	s := &UsersStore{persist: p, now: time.Now, delay: mockAuthDelay}
	if p != nil {
		var st authState
		if p.Load(ctx, persist.KeyAuth, &st) {
			s.user = st.User
		}
	}
	return s
}

// SetAuthDelay overrides the simulated credential latency. Tests set it to
// zero so logins return immediately.
func (s *UsersStore) SetAuthDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Login fabricates an account from the given credentials and makes it the
// session user. The username is derived from the email local part.
func (s *UsersStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	username, _, _ := strings.Cut(email, "@")
	u := &models.User{
		ID:         uuid.New(),
		Email:      email,
		Username:   username,
		AvatarURL:  "/user-walker.jpg",
		Bio:        "技术爱好者",
		CreatedAt:  s.now(),
		Drumsticks: level.DefaultDrumsticks,
	}
	u.PasswordHash = hashPassword(password)

	s.setUser(ctx, u)
	return u, nil
}

// Register fabricates a fresh account and makes it the session user.
func (s *UsersStore) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	u := &models.User{
		ID:         uuid.New(),
		Email:      email,
		Username:   username,
		AvatarURL:  "/user-yuzu.jpg",
		Bio:        "新用户",
		CreatedAt:  s.now(),
		Drumsticks: level.DefaultDrumsticks,
	}
	u.PasswordHash = hashPassword(password)

	s.setUser(ctx, u)
	return u, nil
}

// Logout clears the session user and removes the persisted snapshot.
func (s *UsersStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if s.persist != nil {
		s.persist.Delete(ctx, persist.KeyAuth)
	}
}

// Current returns the session user, or nil when nobody is logged in.
func (s *UsersStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	out := *s.user
	return &out
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// corresponding field unchanged.
type ProfileUpdate struct {
	Username  *string
	AvatarURL *string
	Bio       *string
}

// UpdateProfile applies a partial profile update to the session user.
// Returns nil when nobody is logged in.
func (s *UsersStore) UpdateProfile(ctx context.Context, upd ProfileUpdate) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	if upd.Username != nil {
		s.user.Username = *upd.Username
	}
	if upd.AvatarURL != nil {
		s.user.AvatarURL = *upd.AvatarURL
	}
	if upd.Bio != nil {
		s.user.Bio = *upd.Bio
	}

	s.snapshot(ctx)
	out := *s.user
	return &out
}

// AwardDrumsticks grants up to amount drumsticks to the session user,
// honoring the daily award cap. Returns the updated user and the amount
// actually granted; the grant is zero once the day's cap is spent.
func (s *UsersStore) AwardDrumsticks(ctx context.Context, amount int) (*models.User, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || amount <= 0 {
		return nil, 0
	}

	today := s.now().Format("2006-01-02")
	if s.user.RewardDay != today {
		s.user.RewardDay = today
		s.user.RewardedToday = 0
	}

	remaining := level.RewardDailyLimit - s.user.RewardedToday
	if remaining <= 0 {
		out := *s.user
		return &out, 0
	}
	granted := min(amount, remaining)

	s.user.Drumsticks += granted
	s.user.RewardedToday += granted
	s.snapshot(ctx)

	out := *s.user
	return &out, granted
}

// Level computes the session user's level descriptor. The second return
// value is false when nobody is logged in.
func (s *UsersStore) Level() (level.UserLevel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return level.UserLevel{}, false
	}
	return level.Calculate(s.user.Drumsticks), true
}

// sleep waits out the artificial auth delay, honoring context cancellation.
func (s *UsersStore) sleep(ctx context.Context) error {
	s.mu.RLock()
	delay := s.delay
	s.mu.RUnlock()

	if delay <= 0 {
		return nil
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// setUser installs the fabricated account and mirrors it.
func (s *UsersStore) setUser(ctx context.Context, u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	s.snapshot(ctx)
}

// snapshot mirrors the session user to Valkey. Callers hold the write lock.
func (s *UsersStore) snapshot(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, persist.KeyAuth, authState{User: s.user}); err != nil {
		slog.Warn("auth snapshot failed", "error", err)
	}
}

// hashPassword bcrypt-hashes the supplied password for the fabricated
// record. The hash is stored for shape-fidelity only and never checked.
func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Warn("password hash failed", "error", err)
		return ""
	}
	return string(hash)
}
