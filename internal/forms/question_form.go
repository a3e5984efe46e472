package forms

import (
	"fmt"

	"pubquiz-admin/internal/api"
	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/store"
)

// maxQuestionOptions caps the lettered options at A..H
const maxQuestionOptions = 8

func letterFor(index int) string {
	return string(rune('A' + index))
}

func blankQuestion(roomID string) models.Question {
	return models.Question{
		RoomID:       roomID,
		QuestionType: models.QuestionTypeText,
		Points:       1,
		IsActive:     true,
	}
}

// QuestionForm drives the add/edit lifecycle for quiz questions,
// including the lettered option list of multiple-choice questions.
// Options entered while the type is MULTIPLE_CHOICE stay in the form
// when the type is toggled away; they are only excluded from the
// validation and submit path.
type QuestionForm struct {
	formState[int64]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.Question
	options []models.QuestionOption
}

// NewQuestionForm creates a question form bound to the given client and store
func NewQuestionForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *QuestionForm {
	return &QuestionForm{client: client, store: st, confirm: confirm, draft: blankQuestion("")}
}

// Draft returns the current form draft
func (f *QuestionForm) Draft() models.Question { return f.draft }

// SetDraft replaces the current form draft
func (f *QuestionForm) SetDraft(draft models.Question) { f.draft = draft }

// Options returns the option drafts in letter order
func (f *QuestionForm) Options() []models.QuestionOption {
	return append([]models.QuestionOption(nil), f.options...)
}

// SetRoom resets the add draft's room to the selected parent
func (f *QuestionForm) SetRoom(roomID string) {
	if f.mode == ModeAdd {
		f.draft.RoomID = roomID
	}
}

// SetQuestionType switches the question type. Toggling to
// MULTIPLE_CHOICE seeds two empty options (A and B) when none exist.
func (f *QuestionForm) SetQuestionType(questionType models.QuestionType) {
	f.draft.QuestionType = questionType
	if questionType == models.QuestionTypeMultipleChoice && len(f.options) == 0 {
		f.options = []models.QuestionOption{
			{OptionLetter: "A"},
			{OptionLetter: "B"},
		}
	}
}

// AddOption appends the next lettered option, up to H
func (f *QuestionForm) AddOption() error {
	if len(f.options) >= maxQuestionOptions {
		return f.fail(&models.ValidationError{Message: fmt.Sprintf("a question can have at most %d options", maxQuestionOptions)})
	}
	f.options = append(f.options, models.QuestionOption{OptionLetter: letterFor(len(f.options))})
	return nil
}

// RemoveOption removes the option with the given letter and relabels
// the remaining options contiguously starting at A, in their current order
func (f *QuestionForm) RemoveOption(letter string) {
	kept := f.options[:0]
	for _, option := range f.options {
		if option.OptionLetter != letter {
			kept = append(kept, option)
		}
	}
	for i := range kept {
		kept[i].OptionLetter = letterFor(i)
	}
	f.options = kept
}

// SetOptionText updates the text of the option with the given letter
func (f *QuestionForm) SetOptionText(letter, text string) error {
	for i := range f.options {
		if f.options[i].OptionLetter == letter {
			f.options[i].OptionText = text
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("no option with letter %s", letter)})
}

// BeginEdit pre-populates the form and its option list from the store
func (f *QuestionForm) BeginEdit(id int64) error {
	for _, question := range f.store.Questions() {
		if question.ID == id {
			f.draft = question
			f.options = f.store.OptionsForQuestion(id)
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("question %d not found", id)})
}

// Cancel discards the draft and options, keeping the selected room
func (f *QuestionForm) Cancel() {
	f.draft = blankQuestion(f.draft.RoomID)
	f.options = nil
	f.mode = ModeAdd
	f.originalID = 0
}

// validateOptions gates the multiple-choice submit path: at least two
// options, every option text filled in, and the correct answer must be
// one of the current letters.
func (f *QuestionForm) validateOptions(draft models.Question) error {
	if len(f.options) < 2 {
		return &models.ValidationError{Message: "multiple-choice questions need at least 2 options"}
	}
	for _, option := range f.options {
		if option.OptionText == "" {
			return &models.ValidationError{Message: fmt.Sprintf("option %s text is required", option.OptionLetter)}
		}
	}
	for _, option := range f.options {
		if option.OptionLetter == draft.CorrectAnswer {
			return nil
		}
	}
	return &models.ValidationError{Field: "CorrectAnswer", Message: "must match one of the option letters"}
}

// Submit validates the draft (and, for multiple-choice questions, the
// option list) and issues the create or update followed by a bulk
// option replace. Validation failures issue no network call.
func (f *QuestionForm) Submit() error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	draft := f.draft
	if f.mode == ModeEditing {
		draft.ID = f.originalID
	}
	if err := validateStruct(draft); err != nil {
		return f.fail(err)
	}
	multipleChoice := draft.QuestionType == models.QuestionTypeMultipleChoice
	if multipleChoice {
		if err := f.validateOptions(draft); err != nil {
			return f.fail(err)
		}
	}

	var saved models.Question
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateQuestion(draft)
	} else {
		draft.ID = 0
		saved, err = f.client.CreateQuestion(draft)
	}
	if err != nil {
		return f.fail(err)
	}
	f.store.UpsertQuestion(saved)

	if multipleChoice {
		options := make([]models.QuestionOption, len(f.options))
		copy(options, f.options)
		for i := range options {
			options[i].ID = 0
			options[i].QuestionID = saved.ID
		}
		replaced, err := f.client.ReplaceQuestionOptions(saved.ID, options)
		if err != nil {
			return f.fail(err)
		}
		f.store.ReplaceQuestionOptions(saved.ID, replaced)
	}

	f.draft = blankQuestion(f.draft.RoomID)
	f.options = nil
	f.reset()
	return nil
}

// ToggleActive flips a question's active flag through the PATCH endpoints
func (f *QuestionForm) ToggleActive(id int64) error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	var current *models.Question
	for _, question := range f.store.Questions() {
		if question.ID == id {
			q := question
			current = &q
			break
		}
	}
	if current == nil {
		return f.fail(&models.ValidationError{Message: fmt.Sprintf("question %d not found", id)})
	}

	var updated models.Question
	var err error
	if current.IsActive {
		updated, err = f.client.DeactivateQuestion(id)
	} else {
		updated, err = f.client.ActivateQuestion(id)
	}
	if err != nil {
		return f.fail(err)
	}
	f.store.UpsertQuestion(updated)
	f.lastErr = nil
	return nil
}

// Delete removes a question after confirmation; its options go with it
func (f *QuestionForm) Delete(id int64) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this question?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.client.DeleteQuestion(id); err != nil {
		return f.fail(err)
	}
	f.store.RemoveQuestion(id)
	f.lastErr = nil
	return nil
}

// QuestionSection bundles the question form with the room selection
// that scopes it
type QuestionSection struct {
	client *api.Client
	store  *store.Store

	Questions *QuestionForm

	selectedRoom string
}

// NewQuestionSection creates the question section
func NewQuestionSection(client *api.Client, st *store.Store, confirm ConfirmFunc) *QuestionSection {
	return &QuestionSection{
		client:    client,
		store:     st,
		Questions: NewQuestionForm(client, st, confirm),
	}
}

// SelectRoom scopes the question form to a room
func (s *QuestionSection) SelectRoom(roomID string) {
	s.selectedRoom = roomID
	s.Questions.SetRoom(roomID)
}

// SelectedRoom returns the active room id, empty when none
func (s *QuestionSection) SelectedRoom() string { return s.selectedRoom }

// Refresh fetches the questions of the selected room (or all questions
// when no room is selected) along with the options of every
// multiple-choice question
func (s *QuestionSection) Refresh() error {
	questions, err := s.client.ListQuestions(s.selectedRoom)
	if err != nil {
		return err
	}
	var options []models.QuestionOption
	for _, question := range questions {
		if question.QuestionType != models.QuestionTypeMultipleChoice {
			continue
		}
		questionOptions, err := s.client.ListQuestionOptions(question.ID)
		if err != nil {
			return err
		}
		options = append(options, questionOptions...)
	}
	s.store.ReplaceAllQuestions(questions)
	s.store.ReplaceAllQuestionOptions(options)
	return nil
}
