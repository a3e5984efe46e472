// Seeds the development database with demo rooms, menus and questions.
//
// Usage: go run ./scripts
package main

import (
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pubquiz-admin/internal/config"
	"pubquiz-admin/internal/database"
	"pubquiz-admin/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	db, err := database.InitDatabase(database.FromAppConfig(conf))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate schema")
	}

	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Info("Database already seeded, nothing to do")
		return
	}

	if err := seed(db); err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}
	log.Info("Database seeded successfully")
}

func seed(db *gorm.DB) error {
	rooms := []models.Room{
		{ID: "sample_room", Name: "Sample Pub Quiz", IsActive: true, CreatedAt: time.Date(2025, 3, 11, 20, 49, 35, 0, time.UTC)},
		{ID: "test_room", Name: "Test Room", IsActive: true, CreatedAt: time.Date(2025, 3, 12, 19, 3, 40, 0, time.UTC)},
		{ID: "weekly_quiz", Name: "Weekly Trivia Night", IsActive: true, CreatedAt: time.Date(2025, 3, 11, 20, 49, 35, 0, time.UTC)},
	}

	menus := []models.Menu{
		{ID: 1, Name: "Main Food Menu", Description: "Regular food items", IsActive: true},
		{ID: 2, Name: "Weekend Special Menu", Description: "Special items available only on weekends", IsActive: true},
		{ID: 3, Name: "Drinks Menu", Description: "Beverages and cocktails", IsActive: true},
	}

	categories := []models.Category{
		{ID: 1, MenuID: 1, Name: "Food", Description: "Kitchen favourites", DisplayOrder: 1},
		{ID: 2, MenuID: 1, Name: "Drinks", Description: "From the bar", DisplayOrder: 2},
	}

	items := []models.MenuItem{
		{ID: 1, CategoryID: 1, Name: "Pub Burger", Description: "Juicy burger with cheese and bacon", Price: 12.99, IsAvailable: true, IsPopular: true, DisplayOrder: 1},
		{ID: 2, CategoryID: 1, Name: "Fish & Chips", Description: "Classic English dish with tartar sauce", Price: 14.99, IsAvailable: true, DisplayOrder: 2},
		{ID: 3, CategoryID: 2, Name: "Craft Beer", Description: "Local IPA", Price: 5.99, IsAvailable: true, DisplayOrder: 1},
	}

	itemOptions := []models.ItemOption{
		{ID: 1, MenuItemID: 1, Name: "Extra cheese", PriceAddition: 1.50},
		{ID: 2, MenuItemID: 1, Name: "Gluten-free bun", PriceAddition: 2.00},
	}

	settings := []models.RoomMenuSetting{
		{RoomID: "sample_room", ShowMenu: true, MenuID: 1, MenuDescription: "Enjoy our delicious pub food while you play!"},
	}

	questions := []models.Question{
		{ID: 1, RoomID: "sample_room", Text: "What is the capital of France?", QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "B", Points: 10, IsActive: true},
		{ID: 2, RoomID: "sample_room", Text: "Name the longest river in the world.", QuestionType: models.QuestionTypeText, CorrectAnswer: "Nile", Points: 15, IsActive: true},
	}

	questionOptions := []models.QuestionOption{
		{ID: 1, QuestionID: 1, OptionLetter: "A", OptionText: "London"},
		{ID: 2, QuestionID: 1, OptionLetter: "B", OptionText: "Paris"},
		{ID: 3, QuestionID: 1, OptionLetter: "C", OptionText: "Berlin"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []any{&rooms, &menus, &categories, &items, &itemOptions, &settings, &questions, &questionOptions} {
			if err := tx.Create(batch).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
