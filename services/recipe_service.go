package services

import (
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	Title        string   `json:"title" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	PrepTime     int      `json:"prep_time" binding:"required"`
	CookTime     int      `json:"cook_time" binding:"required"`
	Servings     int      `json:"servings" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Rating       float64  `json:"rating"`
	Cuisine      string   `json:"cuisine" binding:"required"`
	Calories     float64  `json:"calories" binding:"required"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions" binding:"required,min=1"`
}

func (s *RecipeService) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, dbErr(err)
	}
	return recipes, nil
}

func (s *RecipeService) Get(id uint) (*models.Recipe, []uint, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return nil, nil, dbErr(err)
	}
	ids, err := s.CommentIDs(id)
	if err != nil {
		return nil, nil, err
	}
	return &recipe, ids, nil
}

// CommentIDs returns the item's comment back-references, oldest first.
func (s *RecipeService) CommentIDs(recipeID uint) ([]uint, error) {
	ids := []uint{}
	err := s.db.Model(&models.CommentRef{}).
		Where("target_type = ? AND target_id = ?", models.TargetRecipe, recipeID).
		Order("id ASC").
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, dbErr(err)
	}
	return ids, nil
}

func (s *RecipeService) Create(authorID uint, input RecipeInput) (*models.Recipe, error) {
	imageURL, err := utils.ResolveImageURL(input.Image, fmt.Sprintf("recipes/%d", authorID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	recipe := models.Recipe{
		Title:        input.Title,
		Image:        imageURL,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		Difficulty:   input.Difficulty,
		Rating:       input.Rating,
		Cuisine:      input.Cuisine,
		Calories:     input.Calories,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		AuthorID:     authorID,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, dbErr(err)
	}
	return &recipe, nil
}

// ToggleSaved flips the recipe's membership in the user's favorites and
// reports the resulting state.
func (s *RecipeService) ToggleSaved(userID, recipeID uint) (bool, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, dbErr(err)
	}
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return false, dbErr(err)
	}

	var n int64
	if err := s.db.Table("user_saved_recipes").
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&n).Error; err != nil {
		return false, dbErr(err)
	}

	if n > 0 {
		if err := s.db.Model(&user).Association("SavedRecipes").Delete(&recipe); err != nil {
			return false, dbErr(err)
		}
		return false, nil
	}
	if err := s.db.Model(&user).Association("SavedRecipes").Append(&recipe); err != nil {
		return false, dbErr(err)
	}
	return true, nil
}

func (s *RecipeService) ListSaved(userID uint) ([]models.Recipe, error) {
	var user models.User
	if err := s.db.Preload("SavedRecipes").First(&user, userID).Error; err != nil {
		return nil, dbErr(err)
	}
	if user.SavedRecipes == nil {
		return []models.Recipe{}, nil
	}
	return user.SavedRecipes, nil
}
