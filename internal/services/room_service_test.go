package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
)

func TestCreateRoomRejectsDuplicateID(t *testing.T) {
	service := NewRoomService(setupTestDB(t))

	_, err := service.CreateRoom(models.Room{ID: "sample_room", Name: "Sample Pub Quiz"})
	require.NoError(t, err)

	_, err = service.CreateRoom(models.Room{ID: "sample_room", Name: "Clone"})
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateRoomKeepsCreatedAt(t *testing.T) {
	service := NewRoomService(setupTestDB(t))
	created, err := service.CreateRoom(models.Room{ID: "test_room", Name: "Test Room", IsActive: true})
	require.NoError(t, err)

	updated, err := service.UpdateRoom(models.Room{ID: "test_room", Name: "Renamed", IsActive: false})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestDeleteRoomCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db)
	questionService := NewQuestionService(db)

	_, err := service.CreateRoom(models.Room{ID: "sample_room", Name: "Sample Pub Quiz"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Menu{ID: 1, Name: "Main Food Menu"}).Error)
	_, err = service.CreateRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})
	require.NoError(t, err)
	question, err := questionService.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Capital of France?",
		QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "B", Points: 10,
	})
	require.NoError(t, err)
	_, err = questionService.ReplaceQuestionOptions(question.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "London"},
		{OptionLetter: "B", OptionText: "Paris"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRoom("sample_room"))

	_, err = service.GetRoomMenuSetting("sample_room")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	questions, err := questionService.ListQuestions("sample_room")
	require.NoError(t, err)
	assert.Empty(t, questions)
	options, err := questionService.ListQuestionOptions(question.ID)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestCreateSettingChecksRoomAndMenu(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db)

	_, err := service.CreateRoomMenuSetting(models.RoomMenuSetting{RoomID: "nope", ShowMenu: true, MenuID: 1})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "room_id", validation.Field)

	_, err = service.CreateRoom(models.Room{ID: "sample_room", Name: "Sample Pub Quiz"})
	require.NoError(t, err)
	_, err = service.CreateRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 999})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "menu_id", validation.Field)
}

func TestCreateSettingRejectsSecondForSameRoom(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db)
	_, err := service.CreateRoom(models.Room{ID: "sample_room", Name: "Sample Pub Quiz"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Menu{ID: 1, Name: "Main Food Menu"}).Error)

	_, err = service.CreateRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})
	require.NoError(t, err)

	_, err = service.CreateRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: false})
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateSettingMissingRecord(t *testing.T) {
	service := NewRoomService(setupTestDB(t))

	_, err := service.UpdateRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: false})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
