package services

import (
	"fmt"
	"strings"
	"time"

	"backend/models"

	"github.com/sirupsen/logrus"
)

// CommentService owns comment creation, listing, voting and deletion,
// including the cross-document catalog back-references. The catalog
// attach/detach steps are idempotent rather than transactional: a retried
// call after a partial failure converges on the same state.
type CommentService struct {
	comments CommentStore
	catalog  CatalogStore
	hub      *RealtimeHub
	push     *PushService
	log      *logrus.Logger
}

func NewCommentService(comments CommentStore, catalog CatalogStore, hub *RealtimeHub, push *PushService, log *logrus.Logger) *CommentService {
	return &CommentService{comments: comments, catalog: catalog, hub: hub, push: push, log: log}
}

type VoteSummary struct {
	Count int    `json:"count"`
	Users []uint `json:"users"`
}

type CommentView struct {
	ID         uint        `json:"id"`
	Content    string      `json:"content"`
	AuthorID   uint        `json:"author_id"`
	AuthorName string      `json:"author_name"`
	CreatedAt  time.Time   `json:"created_at"`
	Likes      VoteSummary `json:"likes"`
	Dislikes   VoteSummary `json:"dislikes"`
}

// view derives the like/dislike summaries from the vote rows. The voter
// set is the source of truth; counts are its size, so count/set drift
// cannot occur.
func view(cm *models.Comment, votes []models.CommentVote) *CommentView {
	v := &CommentView{
		ID:         cm.ID,
		Content:    cm.Content,
		AuthorID:   cm.AuthorID,
		AuthorName: cm.AuthorName,
		CreatedAt:  cm.CreatedAt,
		Likes:      VoteSummary{Users: []uint{}},
		Dislikes:   VoteSummary{Users: []uint{}},
	}
	for _, vote := range votes {
		switch vote.Action {
		case models.VoteLike:
			v.Likes.Users = append(v.Likes.Users, vote.UserID)
		case models.VoteDislike:
			v.Dislikes.Users = append(v.Dislikes.Users, vote.UserID)
		}
	}
	v.Likes.Count = len(v.Likes.Users)
	v.Dislikes.Count = len(v.Dislikes.Users)
	return v
}

func validTarget(targetType string) bool {
	return targetType == models.TargetRecipe || targetType == models.TargetWorkout
}

// Create stores a comment and attaches it to the addressed catalog item.
func (s *CommentService) Create(content string, authorID uint, authorName, targetType string, targetID uint) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content must not be empty", ErrValidation)
	}
	if !validTarget(targetType) {
		return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
	}

	itemAuthor, err := s.catalog.FindTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	cm := &models.Comment{Content: content, AuthorID: authorID, AuthorName: authorName}
	if err := s.comments.CreateComment(cm); err != nil {
		return nil, err
	}
	if err := s.catalog.AddCommentRef(targetType, targetID, cm.ID); err != nil {
		return nil, err
	}

	out := view(cm, nil)
	s.broadcast(targetType, targetID, "comment.created", out)
	if s.push != nil && itemAuthor != 0 && itemAuthor != authorID {
		s.push.NotifyNewComment(itemAuthor, authorName, targetType, targetID)
	}
	return out, nil
}

// List returns the item's comments newest first. Each call recomputes the
// result from the store; no cursor state is held.
func (s *CommentService) List(targetType string, targetID uint) ([]*CommentView, error) {
	if !validTarget(targetType) {
		return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
	}
	if _, err := s.catalog.FindTarget(targetType, targetID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	out := make([]*CommentView, 0, len(comments))
	for i := range comments {
		votes, err := s.comments.ListVotes(comments[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, view(&comments[i], votes))
	}
	return out, nil
}

// Vote applies a like/dislike toggle for the user and returns the updated
// comment. The prior state is captured before any mutation, so repeating
// an action un-votes and opposing it switches.
func (s *CommentService) Vote(commentID, userID uint, action string) (*CommentView, error) {
	if action != models.VoteLike && action != models.VoteDislike {
		return nil, fmt.Errorf("%w: action must be %q or %q", ErrValidation, models.VoteLike, models.VoteDislike)
	}

	cm, err := s.comments.FindComment(commentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.comments.FindVote(commentID, userID)
	if err != nil {
		return nil, err
	}
	prior := voteNone
	if existing != nil {
		prior = stateOfAction(existing.Action)
	}

	switch next := transition(prior, action); {
	case next == voteNone && existing != nil:
		if err := s.comments.DeleteVote(commentID, userID); err != nil {
			return nil, err
		}
	case next != voteNone && existing != nil:
		existing.Action = actionOfState(next)
		if err := s.comments.SaveVote(existing); err != nil {
			return nil, err
		}
	case next != voteNone:
		v := &models.CommentVote{CommentID: commentID, UserID: userID, Action: actionOfState(next)}
		if err := s.comments.SaveVote(v); err != nil {
			return nil, err
		}
	}

	votes, err := s.comments.ListVotes(commentID)
	if err != nil {
		return nil, err
	}
	out := view(cm, votes)
	s.broadcastComment(commentID, "comment.voted", out)
	return out, nil
}

// Delete removes an author's own comment and cascades: catalog
// back-references first, then votes, then the record. Every step is
// idempotent, so a retry after partial failure completes the cascade;
// a second full delete reports ErrNotFound.
func (s *CommentService) Delete(commentID, requesterID uint) error {
	cm, err := s.comments.FindComment(commentID)
	if err != nil {
		return err
	}
	if cm.AuthorID != requesterID {
		return fmt.Errorf("%w: only the author may delete a comment", ErrForbidden)
	}

	// Capture the attachment before the cascade removes it.
	targetType, targetID, refErr := s.catalog.FindRef(commentID)

	if err := s.catalog.RemoveCommentRefs(commentID); err != nil {
		return err
	}
	if err := s.comments.DeleteVotes(commentID); err != nil {
		return err
	}
	if err := s.comments.DeleteComment(commentID); err != nil {
		return err
	}

	if refErr == nil {
		s.broadcast(targetType, targetID, "comment.deleted", map[string]any{"id": commentID})
	}
	return nil
}

func (s *CommentService) broadcast(targetType string, targetID uint, kind string, payload any) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(TopicFor(targetType, targetID), map[string]any{"kind": kind, "comment": payload})
}

func (s *CommentService) broadcastComment(commentID uint, kind string, payload any) {
	if s.hub == nil {
		return
	}
	targetType, targetID, err := s.catalog.FindRef(commentID)
	if err != nil {
		if s.log != nil {
			s.log.WithError(err).Debug("no catalog ref for broadcast")
		}
		return
	}
	s.broadcast(targetType, targetID, kind, payload)
}
