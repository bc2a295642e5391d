package services

import (
	"time"

	"backend/models"
)

// Store interfaces for the core services. The gorm-backed implementations
// live in the storage package; tests substitute in-memory mocks.

type HealthStore interface {
	// FindUser returns ErrNotFound for an unknown id.
	FindUser(userID uint) (*models.User, error)
	// SaveSnapshot writes the denormalized weight/height/bmi onto the user row.
	SaveSnapshot(userID uint, weight, height, bmi float64) error
	// FindRecord returns (nil, nil) when no record exists for the day.
	FindRecord(userID uint, day time.Time) (*models.HealthRecord, error)
	SaveRecord(rec *models.HealthRecord) error
	// ListRecords returns the user's history ascending by day.
	ListRecords(userID uint) ([]models.HealthRecord, error)
}

type CommentStore interface {
	CreateComment(cm *models.Comment) error
	// FindComment returns ErrNotFound for an unknown id.
	FindComment(id uint) (*models.Comment, error)
	DeleteComment(id uint) error
	// ListByTarget returns comments attached to the item, newest first.
	ListByTarget(targetType string, targetID uint) ([]models.Comment, error)

	ListVotes(commentID uint) ([]models.CommentVote, error)
	// FindVote returns (nil, nil) when the user holds no vote on the comment.
	FindVote(commentID, userID uint) (*models.CommentVote, error)
	SaveVote(v *models.CommentVote) error
	DeleteVote(commentID, userID uint) error
	DeleteVotes(commentID uint) error
}

type CatalogStore interface {
	// FindTarget returns the item's author id, or ErrNotFound.
	FindTarget(targetType string, targetID uint) (authorID uint, err error)
	// AddCommentRef is a no-op if the comment is already attached.
	AddCommentRef(targetType string, targetID, commentID uint) error
	// RemoveCommentRefs detaches the comment everywhere; absent refs are a no-op.
	RemoveCommentRefs(commentID uint) error
	// FindRef reports which item a comment is attached to, or ErrNotFound.
	FindRef(commentID uint) (targetType string, targetID uint, err error)
}
