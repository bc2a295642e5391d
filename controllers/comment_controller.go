package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{Comments: comments}
}

// CreateCommentInput addresses exactly one catalog item.
type CreateCommentInput struct {
	Content   string `json:"content" binding:"required"`
	RecipeID  uint   `json:"recipe_id"`
	WorkoutID uint   `json:"workout_id"`
}

func (cc *CommentController) Create(c *gin.Context) {
	userID := c.GetUint("userID")
	userName := c.GetString("userName")

	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var targetType string
	var targetID uint
	switch {
	case input.RecipeID != 0 && input.WorkoutID != 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of recipe_id or workout_id"})
		return
	case input.RecipeID != 0:
		targetType, targetID = models.TargetRecipe, input.RecipeID
	case input.WorkoutID != 0:
		targetType, targetID = models.TargetWorkout, input.WorkoutID
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of recipe_id or workout_id"})
		return
	}

	comment, err := cc.Comments.Create(input.Content, userID, userName, targetType, targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) List(c *gin.Context) {
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := cc.Comments.List(targetType, targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type VoteInput struct {
	Action string `json:"action" binding:"required"`
}

func (cc *CommentController) Vote(c *gin.Context) {
	userID := c.GetUint("userID")
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Comments.Vote(commentID, userID, input.Action)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.Comments.Delete(commentID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
