package store

import (
	"sort"

	"pubquiz-admin/internal/models"
)

// Derived views. All of these are plain single-pass filters recomputed
// on every read; collection sizes are tens to low hundreds of rows, so
// no indexes are kept.

// CategoriesForMenu returns the categories of a menu, sorted by display
// order (stable, so equal orders keep collection order)
func (s *Store) CategoriesForMenu(menuID int64) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := filterBy(s.categories, func(c models.Category) bool { return c.MenuID == menuID })
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
	return categories
}

// ItemsForCategory returns the items of a category, sorted by display order
func (s *Store) ItemsForCategory(categoryID int64) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := filterBy(s.menuItems, func(i models.MenuItem) bool { return i.CategoryID == categoryID })
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
	return items
}

// ItemsForMenu returns every item of a menu, joined through the menu's
// categories
func (s *Store) ItemsForMenu(menuID int64) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categoryIDs := make(map[int64]bool)
	for _, category := range s.categories {
		if category.MenuID == menuID {
			categoryIDs[category.ID] = true
		}
	}
	return filterBy(s.menuItems, func(i models.MenuItem) bool { return categoryIDs[i.CategoryID] })
}

// OptionsForItem returns the options of a menu item
func (s *Store) OptionsForItem(menuItemID int64) []models.ItemOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterBy(s.itemOptions, func(o models.ItemOption) bool { return o.MenuItemID == menuItemID })
}

// OptionsForQuestion returns the lettered options of a question in
// letter order
func (s *Store) OptionsForQuestion(questionID int64) []models.QuestionOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	options := filterBy(s.questionOptions, func(o models.QuestionOption) bool { return o.QuestionID == questionID })
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].OptionLetter < options[j].OptionLetter
	})
	return options
}

// SettingForRoom returns the menu setting of a room, if one exists
func (s *Store) SettingForRoom(roomID string) (models.RoomMenuSetting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, setting := range s.settings {
		if setting.RoomID == roomID {
			return setting, true
		}
	}
	return models.RoomMenuSetting{}, false
}

// MenuName returns the name of a menu, or "Unknown" for an id that is
// not in the store (matches how the dashboard renders missing parents)
func (s *Store) MenuName(id int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, menu := range s.menus {
		if menu.ID == id {
			return menu.Name
		}
	}
	return "Unknown"
}

// CategoryName returns the name of a category, or "Unknown"
func (s *Store) CategoryName(id int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, category := range s.categories {
		if category.ID == id {
			return category.Name
		}
	}
	return "Unknown"
}

// RoomName returns the name of a room, or "Unknown"
func (s *Store) RoomName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room.Name
		}
	}
	return "Unknown"
}
