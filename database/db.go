package database

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"api/models"
)

// ConnectDB opens the sqlite database configured via the environment.
// DATABASE_PATH defaults to ./database.db when unset.
func ConnectDB() (*gorm.DB, error) {
	// Load environment variables; a missing .env file is fine in containers
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment as-is")
	}

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "database.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs migrations for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Follower{},
	)
}
