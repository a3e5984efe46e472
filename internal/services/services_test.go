package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Menu{}, &models.Category{}, &models.MenuItem{}, &models.ItemOption{},
		&models.Room{}, &models.RoomMenuSetting{},
		&models.Question{}, &models.QuestionOption{},
		&models.Team{},
	)
	require.NoError(t, err)

	return db
}
