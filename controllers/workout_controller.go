package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

func (wc *WorkoutController) List(c *gin.Context) {
	workouts, err := wc.Workouts.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (wc *WorkoutController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	workout, commentIDs, err := wc.Workouts.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout, "comments": commentIDs})
}

func (wc *WorkoutController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Create(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (wc *WorkoutController) ToggleSave(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	saved, err := wc.Workouts.ToggleSaved(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (wc *WorkoutController) ListSaved(c *gin.Context) {
	userID := c.GetUint("userID")

	workouts, err := wc.Workouts.ListSaved(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}
