package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatalf("server exited: %v", err)
	}
}
