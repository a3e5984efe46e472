package services

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"pubquiz-admin/internal/idgen"
	"pubquiz-admin/internal/models"
)

// QuestionService manages quiz questions and their answer options.
// Option sets are replaced wholesale: the bulk endpoint swaps every
// option of a question inside one transaction so readers never see a
// half-replaced set.
type QuestionService interface {
	// ListQuestions returns all questions, or the questions of a room when roomID is nonempty
	ListQuestions(roomID string) ([]models.Question, error)
	GetQuestion(id int64) (models.Question, error)
	CreateQuestion(question models.Question) (models.Question, error)
	UpdateQuestion(question models.Question) (models.Question, error)
	// DeleteQuestion cascades to the question's options
	DeleteQuestion(id int64) error
	SetQuestionActive(id int64, active bool) (models.Question, error)

	ListQuestionOptions(questionID int64) ([]models.QuestionOption, error)
	ReplaceQuestionOptions(questionID int64, options []models.QuestionOption) ([]models.QuestionOption, error)
}

type questionService struct {
	db *gorm.DB
}

// NewQuestionService creates a new instance of QuestionService
func NewQuestionService(db *gorm.DB) QuestionService {
	return &questionService{db: db}
}

func (s *questionService) ListQuestions(roomID string) ([]models.Question, error) {
	var questions []models.Question
	query := s.db
	if roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *questionService) GetQuestion(id int64) (models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (s *questionService) CreateQuestion(question models.Question) (models.Question, error) {
	if err := s.db.First(&models.Room{}, "id = ?", question.RoomID).Error; err != nil {
		return models.Question{}, &models.ValidationError{Field: "room_id", Message: "room not found"}
	}
	if question.ID == 0 {
		question.ID = idgen.NextID()
	}
	if err := s.db.Create(&question).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (s *questionService) UpdateQuestion(question models.Question) (models.Question, error) {
	if err := s.db.First(&models.Question{}, question.ID).Error; err != nil {
		return models.Question{}, err
	}
	if err := s.db.First(&models.Room{}, "id = ?", question.RoomID).Error; err != nil {
		return models.Question{}, &models.ValidationError{Field: "room_id", Message: "room not found"}
	}
	if err := s.db.Save(&question).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (s *questionService) DeleteQuestion(id int64) error {
	if err := s.db.First(&models.Question{}, id).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.QuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

func (s *questionService) SetQuestionActive(id int64, active bool) (models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return models.Question{}, err
	}
	question.IsActive = active
	if err := s.db.Save(&question).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (s *questionService) ListQuestionOptions(questionID int64) ([]models.QuestionOption, error) {
	var options []models.QuestionOption
	query := s.db.Order("option_letter")
	if questionID != 0 {
		query = query.Where("question_id = ?", questionID)
	}
	if err := query.Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (s *questionService) ReplaceQuestionOptions(questionID int64, options []models.QuestionOption) ([]models.QuestionOption, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, err
	}
	if question.QuestionType != models.QuestionTypeMultipleChoice {
		return nil, &models.ValidationError{Field: "question_type", Message: "options are only valid for multiple choice questions"}
	}
	if len(options) < 2 {
		return nil, &models.ValidationError{Field: "options", Message: "at least 2 options are required"}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].OptionLetter < options[j].OptionLetter
	})
	for i := range options {
		expected := string(rune('A' + i))
		if options[i].OptionLetter != expected {
			return nil, &models.ValidationError{
				Field:   "options",
				Message: fmt.Sprintf("option letters must be contiguous from A, got %q at position %d", options[i].OptionLetter, i),
			}
		}
		if options[i].OptionText == "" {
			return nil, &models.ValidationError{Field: "options", Message: "option text is required"}
		}
		options[i].QuestionID = questionID
		options[i].ID = idgen.NextID()
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Create(&options).Error
	})
	if err != nil {
		return nil, err
	}
	return options, nil
}
