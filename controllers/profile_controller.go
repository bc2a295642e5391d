package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{Users: users}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := pc.Users.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile records a measurement together with the descriptive
// profile fields and returns the snapshot plus the full history.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, history, err := pc.Users.UpdateProfile(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot":       snapshot,
		"health_history": history,
	})
}

type HealthInput struct {
	Weight float64 `json:"weight" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

// UpdateHealth is the measurement-only endpoint.
func (pc *ProfileController) UpdateHealth(c *gin.Context) {
	userID := c.GetUint("userID")

	var input HealthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, history, err := pc.Users.UpdateHealth(userID, input.Weight, input.Height)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot":       snapshot,
		"health_history": history,
	})
}
