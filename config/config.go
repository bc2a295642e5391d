package config

import (
	"fmt"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB     *gorm.DB
	Logger *logrus.Logger
)

func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	if os.Getenv("APP_ENV") == "development" {
		Logger.SetLevel(logrus.DebugLevel)
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetLevel(logrus.InfoLevel)
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.HealthRecord{},
		&models.Recipe{},
		&models.Workout{},
		&models.Exercise{},
		&models.Comment{},
		&models.CommentVote{},
		&models.CommentRef{},
		&models.UserDevice{},
	)
	if err != nil {
		Logger.Fatalf("AutoMigrate failed: %v", err)
	}

	Logger.Info("database ready")
}
