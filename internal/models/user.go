package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the single authenticated account of a session. Drumsticks are the
// currency units driving the user's level; RewardDay/RewardedToday track the
// daily drumstick award cap.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Drumsticks   int       `json:"drumsticks"`

	RewardDay     string `json:"rewardDay,omitempty"` // YYYY-MM-DD of the last award
	RewardedToday int    `json:"rewardedToday,omitempty"`
}

// Owns reports whether the user authored the content with the given author id.
func (u *User) Owns(authorID uuid.UUID) bool {
	return u != nil && u.ID == authorID
}
