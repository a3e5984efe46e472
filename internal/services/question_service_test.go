package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
)

func seedRoom(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Room{ID: "sample_room", Name: "Sample Pub Quiz", IsActive: true}).Error)
}

func TestCreateQuestionChecksRoomExists(t *testing.T) {
	service := NewQuestionService(setupTestDB(t))

	_, err := service.CreateQuestion(models.Question{RoomID: "nope", Text: "Q", QuestionType: models.QuestionTypeText, CorrectAnswer: "x", Points: 1})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "room_id", validation.Field)
}

func TestSetQuestionActive(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db)
	service := NewQuestionService(db)
	question, err := service.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Q", QuestionType: models.QuestionTypeText,
		CorrectAnswer: "x", Points: 1, IsActive: true,
	})
	require.NoError(t, err)

	updated, err := service.SetQuestionActive(question.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = service.SetQuestionActive(question.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestReplaceQuestionOptionsSwapsAtomically(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db)
	service := NewQuestionService(db)
	question, err := service.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Capital of France?",
		QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "B", Points: 10,
	})
	require.NoError(t, err)

	_, err = service.ReplaceQuestionOptions(question.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "London"},
		{OptionLetter: "B", OptionText: "Paris"},
	})
	require.NoError(t, err)

	replaced, err := service.ReplaceQuestionOptions(question.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "Madrid"},
		{OptionLetter: "B", OptionText: "Paris"},
		{OptionLetter: "C", OptionText: "Rome"},
	})
	require.NoError(t, err)
	assert.Len(t, replaced, 3)

	options, err := service.ListQuestionOptions(question.ID)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Madrid", options[0].OptionText)
}

func TestReplaceQuestionOptionsValidation(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db)
	service := NewQuestionService(db)

	textQuestion, err := service.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Q", QuestionType: models.QuestionTypeText, CorrectAnswer: "x", Points: 1,
	})
	require.NoError(t, err)

	var validation *models.ValidationError

	// Options only make sense on multiple choice questions
	_, err = service.ReplaceQuestionOptions(textQuestion.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "x"}, {OptionLetter: "B", OptionText: "y"},
	})
	require.ErrorAs(t, err, &validation)

	mcQuestion, err := service.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Q", QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "A", Points: 1,
	})
	require.NoError(t, err)

	// Fewer than two options
	_, err = service.ReplaceQuestionOptions(mcQuestion.ID, []models.QuestionOption{{OptionLetter: "A", OptionText: "x"}})
	require.ErrorAs(t, err, &validation)

	// Non-contiguous letters
	_, err = service.ReplaceQuestionOptions(mcQuestion.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "x"}, {OptionLetter: "C", OptionText: "y"},
	})
	require.ErrorAs(t, err, &validation)

	// Empty text
	_, err = service.ReplaceQuestionOptions(mcQuestion.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "x"}, {OptionLetter: "B", OptionText: ""},
	})
	require.ErrorAs(t, err, &validation)
}

func TestDeleteQuestionCascadesOptions(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db)
	service := NewQuestionService(db)
	question, err := service.CreateQuestion(models.Question{
		RoomID: "sample_room", Text: "Q", QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "A", Points: 1,
	})
	require.NoError(t, err)
	_, err = service.ReplaceQuestionOptions(question.ID, []models.QuestionOption{
		{OptionLetter: "A", OptionText: "x"}, {OptionLetter: "B", OptionText: "y"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteQuestion(question.ID))

	options, err := service.ListQuestionOptions(question.ID)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestListQuestionsFiltersByRoom(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db)
	require.NoError(t, db.Create(&models.Room{ID: "test_room", Name: "Test Room"}).Error)
	service := NewQuestionService(db)

	_, err := service.CreateQuestion(models.Question{RoomID: "sample_room", Text: "Q1", QuestionType: models.QuestionTypeText, CorrectAnswer: "x", Points: 1})
	require.NoError(t, err)
	_, err = service.CreateQuestion(models.Question{RoomID: "test_room", Text: "Q2", QuestionType: models.QuestionTypeText, CorrectAnswer: "y", Points: 1})
	require.NoError(t, err)

	questions, err := service.ListQuestions("sample_room")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Q1", questions[0].Text)

	all, err := service.ListQuestions("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
