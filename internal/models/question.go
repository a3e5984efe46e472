package models

// QuestionType discriminates free-text questions from multiple-choice ones
type QuestionType string

const (
	QuestionTypeText           QuestionType = "TEXT"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

// Question is a quiz question belonging to a room. For multiple-choice
// questions CorrectAnswer holds an option letter; for text questions it
// holds the expected answer string. TimeLimit is in seconds, nil means
// the question is untimed.
type Question struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	RoomID        string       `json:"room_id" gorm:"index;not null" validate:"required"`
	Text          string       `json:"text" gorm:"not null" validate:"required"`
	QuestionType  QuestionType `json:"question_type" gorm:"not null" validate:"required,oneof=TEXT MULTIPLE_CHOICE"`
	CorrectAnswer string       `json:"correct_answer" validate:"required"`
	Points        int          `json:"points" validate:"gte=1"`
	TimeLimit     *int         `json:"time_limit"`
	IsActive      bool         `json:"is_active"`
}

// QuestionOption is one lettered choice of a multiple-choice question.
// Letters run A..H, contiguous and unique within a question.
type QuestionOption struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	QuestionID   int64  `json:"question_id" gorm:"index;not null"`
	OptionLetter string `json:"option_letter" gorm:"not null"`
	OptionText   string `json:"option_text" gorm:"not null"`
}
