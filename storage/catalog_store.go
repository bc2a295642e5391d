package storage

import (
	"fmt"

	"backend/models"
	"backend/services"

	"gorm.io/gorm"
)

type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) FindTarget(targetType string, targetID uint) (uint, error) {
	var authorID uint
	var err error
	switch targetType {
	case models.TargetRecipe:
		var recipe models.Recipe
		err = s.db.Select("author_id").First(&recipe, targetID).Error
		authorID = recipe.AuthorID
	case models.TargetWorkout:
		var workout models.Workout
		err = s.db.Select("author_id").First(&workout, targetID).Error
		authorID = workout.AuthorID
	default:
		return 0, fmt.Errorf("%w: unknown target type %q", services.ErrValidation, targetType)
	}
	if err != nil {
		return 0, storeErr(err)
	}
	return authorID, nil
}

// AddCommentRef attaches the comment. The lookup keys on comment_id, so a
// retried attach (same or racing target) finds the existing row and is a
// no-op: a comment can never be listed under two items.
func (s *CatalogStore) AddCommentRef(targetType string, targetID, commentID uint) error {
	ref := models.CommentRef{TargetType: targetType, TargetID: targetID, CommentID: commentID}
	err := s.db.Where("comment_id = ?", commentID).FirstOrCreate(&ref).Error
	return storeErr(err)
}

func (s *CatalogStore) RemoveCommentRefs(commentID uint) error {
	err := s.db.Where("comment_id = ?", commentID).Delete(&models.CommentRef{}).Error
	return storeErr(err)
}

func (s *CatalogStore) FindRef(commentID uint) (string, uint, error) {
	var ref models.CommentRef
	if err := s.db.Where("comment_id = ?", commentID).First(&ref).Error; err != nil {
		return "", 0, storeErr(err)
	}
	return ref.TargetType, ref.TargetID, nil
}
