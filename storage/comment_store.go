package storage

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) CreateComment(cm *models.Comment) error {
	return storeErr(s.db.Create(cm).Error)
}

func (s *CommentStore) FindComment(id uint) (*models.Comment, error) {
	var cm models.Comment
	if err := s.db.First(&cm, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &cm, nil
}

func (s *CommentStore) DeleteComment(id uint) error {
	res := s.db.Unscoped().Delete(&models.Comment{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	return nil
}

func (s *CommentStore) ListByTarget(targetType string, targetID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.
		Joins("JOIN comment_refs ON comment_refs.comment_id = comments.id").
		Where("comment_refs.target_type = ? AND comment_refs.target_id = ?", targetType, targetID).
		Order("comments.created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return comments, nil
}

func (s *CommentStore) ListVotes(commentID uint) ([]models.CommentVote, error) {
	votes := []models.CommentVote{}
	err := s.db.Where("comment_id = ?", commentID).Find(&votes).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return votes, nil
}

func (s *CommentStore) FindVote(commentID, userID uint) (*models.CommentVote, error) {
	var v models.CommentVote
	err := s.db.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &v, nil
}

func (s *CommentStore) SaveVote(v *models.CommentVote) error {
	return storeErr(s.db.Save(v).Error)
}

func (s *CommentStore) DeleteVote(commentID, userID uint) error {
	err := s.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentVote{}).Error
	return storeErr(err)
}

func (s *CommentStore) DeleteVotes(commentID uint) error {
	err := s.db.Where("comment_id = ?", commentID).Delete(&models.CommentVote{}).Error
	return storeErr(err)
}
