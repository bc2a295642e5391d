package services_test

import (
	"errors"
	"testing"
	"time"

	"backend/models"
	"backend/services"
)

// mockEngagementStore implements both CommentStore and CatalogStore so
// the back-reference bookkeeping can be asserted end to end.
type mockRef struct {
	targetType string
	targetID   uint
}

type mockEngagementStore struct {
	seq      uint
	base     time.Time
	comments map[uint]*models.Comment
	votes    map[uint]map[uint]string // commentID -> userID -> action
	refs     map[uint]mockRef
	targets  map[string]map[uint]uint // targetType -> targetID -> authorID
}

func newMockEngagementStore() *mockEngagementStore {
	return &mockEngagementStore{
		base:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		comments: make(map[uint]*models.Comment),
		votes:    make(map[uint]map[uint]string),
		refs:     make(map[uint]mockRef),
		targets:  make(map[string]map[uint]uint),
	}
}

func (s *mockEngagementStore) addTarget(targetType string, targetID, authorID uint) {
	if s.targets[targetType] == nil {
		s.targets[targetType] = make(map[uint]uint)
	}
	s.targets[targetType][targetID] = authorID
}

// CommentStore

func (s *mockEngagementStore) CreateComment(cm *models.Comment) error {
	s.seq++
	cm.ID = s.seq
	cm.CreatedAt = s.base.Add(time.Duration(s.seq) * time.Minute)
	cp := *cm
	s.comments[cm.ID] = &cp
	return nil
}

func (s *mockEngagementStore) FindComment(id uint) (*models.Comment, error) {
	cm, ok := s.comments[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *cm
	return &cp, nil
}

func (s *mockEngagementStore) DeleteComment(id uint) error {
	delete(s.comments, id)
	return nil
}

func (s *mockEngagementStore) ListByTarget(targetType string, targetID uint) ([]models.Comment, error) {
	out := []models.Comment{}
	for id, ref := range s.refs {
		if ref.targetType == targetType && ref.targetID == targetID {
			if cm, ok := s.comments[id]; ok {
				out = append(out, *cm)
			}
		}
	}
	// newest first
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.After(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (s *mockEngagementStore) ListVotes(commentID uint) ([]models.CommentVote, error) {
	out := []models.CommentVote{}
	for userID, action := range s.votes[commentID] {
		out = append(out, models.CommentVote{CommentID: commentID, UserID: userID, Action: action})
	}
	return out, nil
}

func (s *mockEngagementStore) FindVote(commentID, userID uint) (*models.CommentVote, error) {
	action, ok := s.votes[commentID][userID]
	if !ok {
		return nil, nil
	}
	return &models.CommentVote{CommentID: commentID, UserID: userID, Action: action}, nil
}

func (s *mockEngagementStore) SaveVote(v *models.CommentVote) error {
	if s.votes[v.CommentID] == nil {
		s.votes[v.CommentID] = make(map[uint]string)
	}
	s.votes[v.CommentID][v.UserID] = v.Action
	return nil
}

func (s *mockEngagementStore) DeleteVote(commentID, userID uint) error {
	delete(s.votes[commentID], userID)
	return nil
}

func (s *mockEngagementStore) DeleteVotes(commentID uint) error {
	delete(s.votes, commentID)
	return nil
}

// CatalogStore

func (s *mockEngagementStore) FindTarget(targetType string, targetID uint) (uint, error) {
	authorID, ok := s.targets[targetType][targetID]
	if !ok {
		return 0, services.ErrNotFound
	}
	return authorID, nil
}

func (s *mockEngagementStore) AddCommentRef(targetType string, targetID, commentID uint) error {
	if _, ok := s.refs[commentID]; ok {
		return nil // already attached
	}
	s.refs[commentID] = mockRef{targetType: targetType, targetID: targetID}
	return nil
}

func (s *mockEngagementStore) RemoveCommentRefs(commentID uint) error {
	delete(s.refs, commentID)
	return nil
}

func (s *mockEngagementStore) FindRef(commentID uint) (string, uint, error) {
	ref, ok := s.refs[commentID]
	if !ok {
		return "", 0, services.ErrNotFound
	}
	return ref.targetType, ref.targetID, nil
}

func newCommentService(store *mockEngagementStore) *services.CommentService {
	return services.NewCommentService(store, store, nil, nil, nil)
}

func TestCreateComment_Validation(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	if _, err := svc.Create("   ", 2, "ann", models.TargetRecipe, 1); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("blank content: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create("hi", 2, "ann", "meal", 1); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("bad target type: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create("hi", 2, "ann", models.TargetRecipe, 99); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("missing target: expected ErrNotFound, got %v", err)
	}
}

func TestCreateComment_ListNewestFirst(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	first, err := svc.Create("first", 2, "ann", models.TargetRecipe, 1)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create("second", 3, "bob", models.TargetRecipe, 1)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := svc.List(models.TargetRecipe, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("order = [%d %d], want newest first [%d %d]", list[0].ID, list[1].ID, second.ID, first.ID)
	}
	if list[0].Likes.Count != 0 || list[0].Dislikes.Count != 0 {
		t.Fatalf("fresh comment has votes: %+v", list[0])
	}
}

func TestCreateComment_SnapshotsAuthorName(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetWorkout, 5, 10)
	svc := newCommentService(store)

	cm, err := svc.Create("nice routine", 2, "ann", models.TargetWorkout, 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cm.AuthorID != 2 || cm.AuthorName != "ann" {
		t.Fatalf("author = %d %q, want 2 %q", cm.AuthorID, cm.AuthorName, "ann")
	}
}

func TestVote_ToggleClears(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	cm, _ := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)

	after, err := svc.Vote(cm.ID, 7, models.VoteLike)
	if err != nil {
		t.Fatalf("first like: %v", err)
	}
	if after.Likes.Count != 1 || after.Likes.Users[0] != 7 {
		t.Fatalf("after first like: %+v", after.Likes)
	}

	after, err = svc.Vote(cm.ID, 7, models.VoteLike)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if after.Likes.Count != 0 || len(after.Likes.Users) != 0 {
		t.Fatalf("second like did not clear: %+v", after.Likes)
	}
}

func TestVote_SwitchIsMutuallyExclusive(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	cm, _ := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)

	if _, err := svc.Vote(cm.ID, 7, models.VoteDislike); err != nil {
		t.Fatalf("dislike: %v", err)
	}
	after, err := svc.Vote(cm.ID, 7, models.VoteLike)
	if err != nil {
		t.Fatalf("like: %v", err)
	}

	if after.Dislikes.Count != 0 || len(after.Dislikes.Users) != 0 {
		t.Fatalf("dislike not removed on switch: %+v", after.Dislikes)
	}
	if after.Likes.Count != 1 || after.Likes.Users[0] != 7 {
		t.Fatalf("like not added on switch: %+v", after.Likes)
	}
}

func TestVote_Errors(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	cm, _ := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)

	if _, err := svc.Vote(999, 7, models.VoteLike); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("unknown comment: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Vote(cm.ID, 7, "love"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("bad action: expected ErrValidation, got %v", err)
	}
}

func TestCreateComment_AttachIsIdempotentAndSingle(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	store.addTarget(models.TargetWorkout, 5, 11)
	svc := newCommentService(store)

	cm, err := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A retried attach is a no-op, even when aimed at a different item:
	// the first ref wins and the comment stays attached to one item.
	if err := store.AddCommentRef(models.TargetRecipe, 1, cm.ID); err != nil {
		t.Fatalf("retried attach: %v", err)
	}
	if err := store.AddCommentRef(models.TargetWorkout, 5, cm.ID); err != nil {
		t.Fatalf("cross-target attach: %v", err)
	}

	targetType, targetID, err := store.FindRef(cm.ID)
	if err != nil || targetType != models.TargetRecipe || targetID != 1 {
		t.Fatalf("ref = %q %d (%v), want recipe 1", targetType, targetID, err)
	}
	recipeList, _ := svc.List(models.TargetRecipe, 1)
	if len(recipeList) != 1 {
		t.Fatalf("recipe list = %d comments, want 1", len(recipeList))
	}
	workoutList, _ := svc.List(models.TargetWorkout, 5)
	if len(workoutList) != 0 {
		t.Fatalf("comment listed under a second item")
	}
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	cm, _ := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)

	if err := svc.Delete(cm.ID, 3); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("non-author delete: expected ErrForbidden, got %v", err)
	}

	// Nothing changed.
	list, _ := svc.List(models.TargetRecipe, 1)
	if len(list) != 1 {
		t.Fatalf("comment vanished after forbidden delete")
	}
	if _, _, err := store.FindRef(cm.ID); err != nil {
		t.Fatalf("catalog ref vanished after forbidden delete: %v", err)
	}
}

func TestDeleteComment_CascadesAndIsIdempotent(t *testing.T) {
	store := newMockEngagementStore()
	store.addTarget(models.TargetRecipe, 1, 10)
	svc := newCommentService(store)

	cm, _ := svc.Create("tasty", 2, "ann", models.TargetRecipe, 1)
	if _, err := svc.Vote(cm.ID, 7, models.VoteLike); err != nil {
		t.Fatalf("vote: %v", err)
	}

	if err := svc.Delete(cm.ID, 2); err != nil {
		t.Fatalf("author delete: %v", err)
	}

	list, _ := svc.List(models.TargetRecipe, 1)
	if len(list) != 0 {
		t.Fatalf("comment still listed after delete")
	}
	if _, _, err := store.FindRef(cm.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("catalog ref survived delete")
	}
	if len(store.votes[cm.ID]) != 0 {
		t.Fatalf("votes survived delete")
	}

	if err := svc.Delete(cm.ID, 2); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
