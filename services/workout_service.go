package services

import (
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type ExerciseInput struct {
	Name         string   `json:"name" binding:"required"`
	Sets         int      `json:"sets" binding:"required"`
	Reps         int      `json:"reps" binding:"required"`
	Duration     int      `json:"duration"`
	Calories     float64  `json:"calories" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	MuscleGroup  string   `json:"muscle_group" binding:"required"`
	Instructions []string `json:"instructions" binding:"required,min=1"`
	Equipment    []string `json:"equipment"`
}

type WorkoutInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Duration    int             `json:"duration" binding:"required"`
	Difficulty  string          `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Calories    float64         `json:"calories" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Rating      float64         `json:"rating"`
	Image       string          `json:"image" binding:"required"`
	Exercises   []ExerciseInput `json:"exercises"`
}

func (s *WorkoutService) List() ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.Preload("Exercises").Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, dbErr(err)
	}
	return workouts, nil
}

func (s *WorkoutService) Get(id uint) (*models.Workout, []uint, error) {
	var workout models.Workout
	if err := s.db.Preload("Exercises").First(&workout, id).Error; err != nil {
		return nil, nil, dbErr(err)
	}
	ids, err := s.CommentIDs(id)
	if err != nil {
		return nil, nil, err
	}
	return &workout, ids, nil
}

// CommentIDs returns the item's comment back-references, oldest first.
func (s *WorkoutService) CommentIDs(workoutID uint) ([]uint, error) {
	ids := []uint{}
	err := s.db.Model(&models.CommentRef{}).
		Where("target_type = ? AND target_id = ?", models.TargetWorkout, workoutID).
		Order("id ASC").
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, dbErr(err)
	}
	return ids, nil
}

func (s *WorkoutService) Create(authorID uint, input WorkoutInput) (*models.Workout, error) {
	imageURL, err := utils.ResolveImageURL(input.Image, fmt.Sprintf("workouts/%d", authorID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	workout := models.Workout{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Difficulty:  input.Difficulty,
		Calories:    input.Calories,
		Category:    input.Category,
		Rating:      input.Rating,
		Image:       imageURL,
		AuthorID:    authorID,
	}
	for _, ex := range input.Exercises {
		exImage, err := utils.ResolveImageURL(ex.Image, fmt.Sprintf("exercises/%d", authorID))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		workout.Exercises = append(workout.Exercises, models.Exercise{
			Name:         ex.Name,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			Duration:     ex.Duration,
			Calories:     ex.Calories,
			Image:        exImage,
			Difficulty:   ex.Difficulty,
			MuscleGroup:  ex.MuscleGroup,
			Instructions: ex.Instructions,
			Equipment:    ex.Equipment,
		})
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, dbErr(err)
	}
	return &workout, nil
}

func (s *WorkoutService) ToggleSaved(userID, workoutID uint) (bool, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, dbErr(err)
	}
	var workout models.Workout
	if err := s.db.First(&workout, workoutID).Error; err != nil {
		return false, dbErr(err)
	}

	var n int64
	if err := s.db.Table("user_saved_workouts").
		Where("user_id = ? AND workout_id = ?", userID, workoutID).
		Count(&n).Error; err != nil {
		return false, dbErr(err)
	}

	if n > 0 {
		if err := s.db.Model(&user).Association("SavedWorkouts").Delete(&workout); err != nil {
			return false, dbErr(err)
		}
		return false, nil
	}
	if err := s.db.Model(&user).Association("SavedWorkouts").Append(&workout); err != nil {
		return false, dbErr(err)
	}
	return true, nil
}

func (s *WorkoutService) ListSaved(userID uint) ([]models.Workout, error) {
	var user models.User
	if err := s.db.Preload("SavedWorkouts.Exercises").First(&user, userID).Error; err != nil {
		return nil, dbErr(err)
	}
	if user.SavedWorkouts == nil {
		return []models.Workout{}, nil
	}
	return user.SavedWorkouts, nil
}
