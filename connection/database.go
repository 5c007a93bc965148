package connection

import (
	"fmt"
	"os"

	"doctrack/model"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func DBConnection() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.DocumentType{},
		&model.ChecklistCriterion{},
		&model.TaskTemplate{},
		&model.TemplateChecklistLink{},
		&model.Task{},
		&model.ProgressItem{},
		&model.ActivityWeek{},
		&model.ActivityCategory{},
		&model.ActivityItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
