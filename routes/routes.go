package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	log := config.Logger

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db, log)
	if err != nil {
		log.WithError(err).Warn("push service unavailable")
		push = nil
	}

	healthSvc := services.NewHealthService(storage.NewHealthStore(db))
	userSvc := services.NewUserService(db, healthSvc)
	authSvc := services.NewAuthService(db, log)
	recipeSvc := services.NewRecipeService(db)
	workoutSvc := services.NewWorkoutService(db)
	commentSvc := services.NewCommentService(
		storage.NewCommentStore(db),
		storage.NewCatalogStore(db),
		hub, push, log,
	)

	authCtl := controllers.NewAuthController(authSvc, userSvc)
	profileCtl := controllers.NewProfileController(userSvc)
	recipeCtl := controllers.NewRecipeController(recipeSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	commentCtl := controllers.NewCommentController(commentSvc)
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/signin", authCtl.Signin)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/me", middlewares.AuthMiddleware(), authCtl.Me)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", recipeCtl.List)
		recipes.GET("/saved", middlewares.AuthMiddleware(), recipeCtl.ListSaved)
		recipes.GET("/:id", recipeCtl.Get)
		recipes.POST("", middlewares.AuthMiddleware(), recipeCtl.Create)
		recipes.POST("/:id/save", middlewares.AuthMiddleware(), recipeCtl.ToggleSave)
	}

	workouts := api.Group("/workouts")
	{
		workouts.GET("", workoutCtl.List)
		workouts.GET("/saved", middlewares.AuthMiddleware(), workoutCtl.ListSaved)
		workouts.GET("/:id", workoutCtl.Get)
		workouts.POST("", middlewares.AuthMiddleware(), workoutCtl.Create)
		workouts.POST("/:id/save", middlewares.AuthMiddleware(), workoutCtl.ToggleSave)
	}

	profile := api.Group("/profile")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.GET("", profileCtl.GetProfile)
		profile.POST("", profileCtl.UpdateProfile)
		profile.POST("/health", profileCtl.UpdateHealth)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:type/:id", commentCtl.List)
		comments.POST("", middlewares.AuthMiddleware(), commentCtl.Create)
		comments.POST("/:id/vote", middlewares.AuthMiddleware(), commentCtl.Vote)
		comments.DELETE("/:id", middlewares.AuthMiddleware(), commentCtl.Delete)
	}

	devices := api.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtl.Register)
		devices.POST("/notifications/toggle", deviceCtl.ToggleNotifications)
	}

	api.GET("/ws/comments", realtimeCtl.CommentsWS)

	return r
}
