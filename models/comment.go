package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment target types.
const (
	TargetRecipe  = "recipe"
	TargetWorkout = "workout"
)

// Vote actions.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

type Comment struct {
	gorm.Model
	Content string `gorm:"type:text;not null" json:"content"`
	// AuthorName is a snapshot of the display name at creation time.
	AuthorID   uint   `gorm:"index;not null" json:"author_id"`
	AuthorName string `gorm:"not null" json:"author_name"`
}

// CommentVote is one row per (comment, user). The unique index gives the
// mutual-exclusion guarantee: a user holds at most one vote per comment,
// and like/dislike counts are derived by counting rows, never stored.
type CommentVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"uniqueIndex:idx_comment_voter;not null" json:"comment_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_comment_voter;not null" json:"user_id"`
	Action    string    `gorm:"size:8;not null" json:"action"` // "like" | "dislike"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentRef attaches a comment to exactly one catalog item. The unique
// index on CommentID blocks a comment from ever being listed under two
// items, and makes the attach step an idempotent no-op on retry.
type CommentRef struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TargetType string    `gorm:"size:16;index:idx_ref_target;not null" json:"target_type"` // "recipe" | "workout"
	TargetID   uint      `gorm:"index:idx_ref_target;not null" json:"target_id"`
	CommentID  uint      `gorm:"uniqueIndex;not null" json:"comment_id"`
	CreatedAt  time.Time `json:"created_at"`
}
