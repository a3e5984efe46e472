package api

import (
	"fmt"
	"net/url"
	"strconv"

	"pubquiz-admin/internal/models"
)

// ListQuestions retrieves questions, optionally filtered by room.
// An empty roomID returns all questions.
func (c *Client) ListQuestions(roomID string) ([]models.Question, error) {
	query := url.Values{}
	if roomID != "" {
		query.Set("room_id", roomID)
	}
	var questions []models.Question
	if err := c.get("/questions", query, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion retrieves a single question by ID
func (c *Client) GetQuestion(id int64) (models.Question, error) {
	var question models.Question
	if err := c.get(fmt.Sprintf("/questions/%d", id), nil, &question); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// CreateQuestion creates a question; the server assigns the ID
func (c *Client) CreateQuestion(question models.Question) (models.Question, error) {
	var created models.Question
	if err := c.post("/questions", question, &created); err != nil {
		return models.Question{}, err
	}
	return created, nil
}

// UpdateQuestion replaces the question identified by question.ID
func (c *Client) UpdateQuestion(question models.Question) (models.Question, error) {
	var updated models.Question
	if err := c.put(fmt.Sprintf("/questions/%d", question.ID), question, &updated); err != nil {
		return models.Question{}, err
	}
	return updated, nil
}

// DeleteQuestion deletes a question by ID
func (c *Client) DeleteQuestion(id int64) error {
	return c.delete(fmt.Sprintf("/questions/%d", id))
}

// ActivateQuestion marks a question active
func (c *Client) ActivateQuestion(id int64) (models.Question, error) {
	var question models.Question
	if err := c.patch(fmt.Sprintf("/questions/%d/activate", id), &question); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// DeactivateQuestion marks a question inactive
func (c *Client) DeactivateQuestion(id int64) (models.Question, error) {
	var question models.Question
	if err := c.patch(fmt.Sprintf("/questions/%d/deactivate", id), &question); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// ListQuestionOptions retrieves the lettered options of a question
func (c *Client) ListQuestionOptions(questionID int64) ([]models.QuestionOption, error) {
	query := url.Values{}
	query.Set("question_id", strconv.FormatInt(questionID, 10))
	var options []models.QuestionOption
	if err := c.get("/options", query, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// bulkOptionsRequest is the body of the bulk replace endpoint
type bulkOptionsRequest struct {
	Options []models.QuestionOption `json:"options"`
}

// ReplaceQuestionOptions replaces all options of a question in one
// call. The server validates letters and option count.
func (c *Client) ReplaceQuestionOptions(questionID int64, options []models.QuestionOption) ([]models.QuestionOption, error) {
	var replaced []models.QuestionOption
	body := bulkOptionsRequest{Options: options}
	if err := c.post(fmt.Sprintf("/options/bulk/%d", questionID), body, &replaced); err != nil {
		return nil, err
	}
	return replaced, nil
}
