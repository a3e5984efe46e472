package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubquiz-admin/internal/models"
)

func seededStore() *Store {
	s := New()
	s.ReplaceAllMenus([]models.Menu{
		{ID: 1, Name: "Lunch", IsActive: true},
		{ID: 2, Name: "Dinner", IsActive: true},
	})
	s.ReplaceAllCategories([]models.Category{
		{ID: 10, MenuID: 1, Name: "Mains", DisplayOrder: 2},
		{ID: 11, MenuID: 1, Name: "Starters", DisplayOrder: 1},
		{ID: 12, MenuID: 2, Name: "Grill", DisplayOrder: 1},
	})
	s.ReplaceAllMenuItems([]models.MenuItem{
		{ID: 100, CategoryID: 10, Name: "Burger", Price: 12.99, DisplayOrder: 1},
		{ID: 101, CategoryID: 11, Name: "Soup", Price: 4.99, DisplayOrder: 1},
		{ID: 102, CategoryID: 12, Name: "Steak", Price: 21.99, DisplayOrder: 1},
	})
	s.ReplaceAllItemOptions([]models.ItemOption{
		{ID: 1000, MenuItemID: 100, Name: "Extra cheese", PriceAddition: 1.5},
		{ID: 1001, MenuItemID: 100, Name: "Bacon", PriceAddition: 2},
	})
	return s
}

func TestUpsertReplacesInPlace(t *testing.T) {
	s := seededStore()

	s.UpsertMenu(models.Menu{ID: 1, Name: "Lunch Specials", IsActive: true})

	menus := s.Menus()
	require.Len(t, menus, 2)
	// Position preserved, record replaced
	assert.Equal(t, int64(1), menus[0].ID)
	assert.Equal(t, "Lunch Specials", menus[0].Name)
}

func TestUpsertAppendsUnknownRecord(t *testing.T) {
	s := seededStore()

	s.UpsertMenu(models.Menu{ID: 3, Name: "Drinks"})

	menus := s.Menus()
	require.Len(t, menus, 3)
	assert.Equal(t, "Drinks", menus[2].Name)
}

func TestDeleteMenuRefusesWhileCategoriesRemain(t *testing.T) {
	s := seededStore()

	err := s.DeleteMenu(1)
	require.Error(t, err)

	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Count)
	assert.Equal(t, "cannot delete menu: 2 categories reference it", conflict.Message)
	// Nothing was removed
	assert.Len(t, s.Menus(), 2)
}

func TestDeleteMenuSucceedsOnceEmpty(t *testing.T) {
	s := seededStore()
	s.DeleteMenuItem(102)
	require.NoError(t, s.DeleteCategory(12))

	require.NoError(t, s.DeleteMenu(2))
	assert.Len(t, s.Menus(), 1)
}

func TestDeleteCategoryRefusesWhileItemsRemain(t *testing.T) {
	s := seededStore()

	err := s.DeleteCategory(10)
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, conflict.Count)
	assert.Equal(t, "cannot delete category: 1 menu items reference it", conflict.Message)
}

func TestDeleteMenuItemCascadesOptions(t *testing.T) {
	s := seededStore()

	s.DeleteMenuItem(100)

	assert.Empty(t, s.OptionsForItem(100))
	assert.Len(t, s.MenuItems(), 2)
}

func TestCategoriesForMenuSortedByDisplayOrder(t *testing.T) {
	s := seededStore()

	categories := s.CategoriesForMenu(1)
	require.Len(t, categories, 2)
	assert.Equal(t, "Starters", categories[0].Name)
	assert.Equal(t, "Mains", categories[1].Name)
}

func TestItemsForMenuJoinsThroughCategories(t *testing.T) {
	s := seededStore()

	items := s.ItemsForMenu(1)
	require.Len(t, items, 2)
	names := []string{items[0].Name, items[1].Name}
	assert.Contains(t, names, "Burger")
	assert.Contains(t, names, "Soup")
}

func TestViewsRecomputedAfterMutation(t *testing.T) {
	s := seededStore()
	require.Len(t, s.ItemsForCategory(10), 1)

	s.UpsertMenuItem(models.MenuItem{ID: 103, CategoryID: 10, Name: "Pie", DisplayOrder: 2})

	items := s.ItemsForCategory(10)
	require.Len(t, items, 2)
	assert.Equal(t, "Pie", items[1].Name)
}

func TestLookupNamesFallBackToUnknown(t *testing.T) {
	s := seededStore()

	assert.Equal(t, "Lunch", s.MenuName(1))
	assert.Equal(t, "Unknown", s.MenuName(999))
	assert.Equal(t, "Unknown", s.CategoryName(999))
	assert.Equal(t, "Unknown", s.RoomName("nope"))
}

func TestDeleteRoomCascadesSetting(t *testing.T) {
	s := New()
	s.ReplaceAllRooms([]models.Room{{ID: "sample_room", Name: "Sample Pub Quiz"}})
	s.UpsertRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})

	s.DeleteRoom("sample_room")

	assert.Empty(t, s.Rooms())
	_, ok := s.SettingForRoom("sample_room")
	assert.False(t, ok)
}

func TestRemoveQuestionCascadesOptions(t *testing.T) {
	s := New()
	s.ReplaceAllQuestions([]models.Question{
		{ID: 1, RoomID: "sample_room", Text: "Capital of France?", QuestionType: models.QuestionTypeMultipleChoice},
	})
	s.ReplaceQuestionOptions(1, []models.QuestionOption{
		{ID: 10, QuestionID: 1, OptionLetter: "A", OptionText: "London"},
		{ID: 11, QuestionID: 1, OptionLetter: "B", OptionText: "Paris"},
	})

	s.RemoveQuestion(1)

	assert.Empty(t, s.Questions())
	assert.Empty(t, s.OptionsForQuestion(1))
}

func TestReplaceQuestionOptionsSwapsOnlyThatQuestion(t *testing.T) {
	s := New()
	s.ReplaceAllQuestionOptions([]models.QuestionOption{
		{ID: 10, QuestionID: 1, OptionLetter: "A", OptionText: "London"},
		{ID: 11, QuestionID: 1, OptionLetter: "B", OptionText: "Paris"},
		{ID: 20, QuestionID: 2, OptionLetter: "A", OptionText: "Red"},
	})

	s.ReplaceQuestionOptions(1, []models.QuestionOption{
		{ID: 30, QuestionID: 1, OptionLetter: "A", OptionText: "Madrid"},
	})

	opts := s.OptionsForQuestion(1)
	require.Len(t, opts, 1)
	assert.Equal(t, "Madrid", opts[0].OptionText)
	// The other question's options are untouched
	assert.Len(t, s.OptionsForQuestion(2), 1)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := seededStore()

	menus := s.Menus()
	menus[0].Name = "mutated"

	assert.Equal(t, "Lunch", s.Menus()[0].Name)
}
