// Package store holds the authoritative client-side copies of every
// entity collection of the dashboard. Collections are mutated only
// after a successful remote call; derived views are pure functions
// recomputed on each read.
package store

import (
	"fmt"
	"sync"

	"pubquiz-admin/internal/models"
)

// Store is the in-memory entity cascade store. The mutex makes the
// accessors safe to share with tests driving several forms; no
// cross-collection transactionality is promised.
type Store struct {
	mu              sync.RWMutex
	menus           []models.Menu
	categories      []models.Category
	menuItems       []models.MenuItem
	itemOptions     []models.ItemOption
	rooms           []models.Room
	settings        []models.RoomMenuSetting
	questions       []models.Question
	questionOptions []models.QuestionOption
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// upsert replaces the record with the same key in place, preserving the
// position of all other elements, or appends when absent.
func upsert[T any, K comparable](list []T, record T, key func(T) K) []T {
	id := key(record)
	for i := range list {
		if key(list[i]) == id {
			list[i] = record
			return list
		}
	}
	return append(list, record)
}

// removeByKey returns a new slice without the record matching id
func removeByKey[T any, K comparable](list []T, id K, key func(T) K) []T {
	out := make([]T, 0, len(list))
	for _, record := range list {
		if key(record) != id {
			out = append(out, record)
		}
	}
	return out
}

// filterBy returns the records for which keep is true, in order
func filterBy[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, record := range list {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}

func clone[T any](list []T) []T {
	return append([]T(nil), list...)
}

func menuKey(m models.Menu) int64              { return m.ID }
func categoryKey(c models.Category) int64      { return c.ID }
func itemKey(i models.MenuItem) int64          { return i.ID }
func itemOptionKey(o models.ItemOption) int64  { return o.ID }
func roomKey(r models.Room) string             { return r.ID }
func settingKey(s models.RoomMenuSetting) string { return s.RoomID }
func questionKey(q models.Question) int64      { return q.ID }

// Menus returns a copy of the menu collection
func (s *Store) Menus() []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.menus)
}

// ReplaceAllMenus replaces the menu collection wholesale
func (s *Store) ReplaceAllMenus(menus []models.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = clone(menus)
}

// UpsertMenu inserts or replaces a menu, matched by ID
func (s *Store) UpsertMenu(menu models.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = upsert(s.menus, menu, menuKey)
}

// RemoveMenu removes a menu without guard checks
func (s *Store) RemoveMenu(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = removeByKey(s.menus, id, menuKey)
}

// Categories returns a copy of the category collection
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.categories)
}

// ReplaceAllCategories replaces the category collection wholesale
func (s *Store) ReplaceAllCategories(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = clone(categories)
}

// UpsertCategory inserts or replaces a category, matched by ID
func (s *Store) UpsertCategory(category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = upsert(s.categories, category, categoryKey)
}

// RemoveCategory removes a category without guard checks
func (s *Store) RemoveCategory(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = removeByKey(s.categories, id, categoryKey)
}

// MenuItems returns a copy of the menu item collection
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.menuItems)
}

// ReplaceAllMenuItems replaces the menu item collection wholesale
func (s *Store) ReplaceAllMenuItems(items []models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuItems = clone(items)
}

// UpsertMenuItem inserts or replaces a menu item, matched by ID
func (s *Store) UpsertMenuItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuItems = upsert(s.menuItems, item, itemKey)
}

// ItemOptions returns a copy of the item option collection
func (s *Store) ItemOptions() []models.ItemOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.itemOptions)
}

// ReplaceAllItemOptions replaces the item option collection wholesale
func (s *Store) ReplaceAllItemOptions(options []models.ItemOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemOptions = clone(options)
}

// UpsertItemOption inserts or replaces an item option, matched by ID
func (s *Store) UpsertItemOption(option models.ItemOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemOptions = upsert(s.itemOptions, option, itemOptionKey)
}

// RemoveItemOption removes an item option
func (s *Store) RemoveItemOption(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemOptions = removeByKey(s.itemOptions, id, itemOptionKey)
}

// Rooms returns a copy of the room collection
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.rooms)
}

// ReplaceAllRooms replaces the room collection wholesale
func (s *Store) ReplaceAllRooms(rooms []models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = clone(rooms)
}

// UpsertRoom inserts or replaces a room, matched by ID
func (s *Store) UpsertRoom(room models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = upsert(s.rooms, room, roomKey)
}

// RoomMenuSettings returns a copy of the room menu setting collection
func (s *Store) RoomMenuSettings() []models.RoomMenuSetting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.settings)
}

// ReplaceAllRoomMenuSettings replaces the setting collection wholesale
func (s *Store) ReplaceAllRoomMenuSettings(settings []models.RoomMenuSetting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = clone(settings)
}

// UpsertRoomMenuSetting inserts or replaces a setting, matched by room.
// The room-keyed upsert is what keeps "at most one setting per room"
// true on the client side.
func (s *Store) UpsertRoomMenuSetting(setting models.RoomMenuSetting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = upsert(s.settings, setting, settingKey)
}

// RemoveRoomMenuSetting removes the setting of a room
func (s *Store) RemoveRoomMenuSetting(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = removeByKey(s.settings, roomID, settingKey)
}

// Questions returns a copy of the question collection
func (s *Store) Questions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.questions)
}

// ReplaceAllQuestions replaces the question collection wholesale
func (s *Store) ReplaceAllQuestions(questions []models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = clone(questions)
}

// UpsertQuestion inserts or replaces a question, matched by ID
func (s *Store) UpsertQuestion(question models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = upsert(s.questions, question, questionKey)
}

// RemoveQuestion removes a question and its options
func (s *Store) RemoveQuestion(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = removeByKey(s.questions, id, questionKey)
	s.questionOptions = filterBy(s.questionOptions, func(o models.QuestionOption) bool {
		return o.QuestionID != id
	})
}

// QuestionOptions returns a copy of the question option collection
func (s *Store) QuestionOptions() []models.QuestionOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.questionOptions)
}

// ReplaceAllQuestionOptions replaces the question option collection
func (s *Store) ReplaceAllQuestionOptions(options []models.QuestionOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionOptions = clone(options)
}

// ReplaceQuestionOptions swaps out the options of a single question,
// leaving other questions' options untouched
func (s *Store) ReplaceQuestionOptions(questionID int64, options []models.QuestionOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := filterBy(s.questionOptions, func(o models.QuestionOption) bool {
		return o.QuestionID != questionID
	})
	s.questionOptions = append(kept, options...)
}

// DeleteMenu removes a menu, refusing with a ConflictError while any
// category references it. A refused delete leaves the store unchanged.
func (s *Store) DeleteMenu(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dependents := len(filterBy(s.categories, func(c models.Category) bool { return c.MenuID == id }))
	if dependents > 0 {
		return &models.ConflictError{
			Count:   dependents,
			Message: fmt.Sprintf("cannot delete menu: %d categories reference it", dependents),
		}
	}
	s.menus = removeByKey(s.menus, id, menuKey)
	return nil
}

// DeleteCategory removes a category, refusing with a ConflictError
// while any menu item references it.
func (s *Store) DeleteCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dependents := len(filterBy(s.menuItems, func(i models.MenuItem) bool { return i.CategoryID == id }))
	if dependents > 0 {
		return &models.ConflictError{
			Count:   dependents,
			Message: fmt.Sprintf("cannot delete category: %d menu items reference it", dependents),
		}
	}
	s.categories = removeByKey(s.categories, id, categoryKey)
	return nil
}

// DeleteMenuItem removes a menu item and cascades to its options in
// the same operation
func (s *Store) DeleteMenuItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuItems = removeByKey(s.menuItems, id, itemKey)
	s.itemOptions = filterBy(s.itemOptions, func(o models.ItemOption) bool {
		return o.MenuItemID != id
	})
}

// DeleteRoom removes a room and cascades to its menu setting
func (s *Store) DeleteRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = removeByKey(s.rooms, id, roomKey)
	s.settings = removeByKey(s.settings, id, settingKey)
}
