// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/google/uuid"
)

// Comment belongs to a post. A nil ParentID marks a top-level comment;
// otherwise ParentID references another comment on the same post. The model
// permits arbitrary nesting depth even though the UI only renders one level.
type Comment struct {
	ID        uuid.UUID   `json:"id"`
	PostID    uuid.UUID   `json:"postId"`
	Content   string      `json:"content"`
	Author    Author      `json:"author"`
	ParentID  *uuid.UUID  `json:"parentId,omitempty"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	Likes     int         `json:"likes"`
	LikedBy   []uuid.UUID `json:"likedBy"`
}

// IsTopLevel reports whether the comment sits directly under its post.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// IsReplyTo reports whether the comment is a direct reply to parentID.
func (c *Comment) IsReplyTo(parentID uuid.UUID) bool {
	return c.ParentID != nil && *c.ParentID == parentID
}

// LikedByUser reports whether userID appears in the LikedBy set.
func (c *Comment) LikedByUser(userID uuid.UUID) bool {
	for _, id := range c.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
