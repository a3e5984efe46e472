package forms

import (
	"fmt"

	"pubquiz-admin/internal/api"
	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/store"
)

// formState is the lifecycle state shared by every entity form: the
// add/editing mode, the id being edited, the in-flight guard and the
// single last-error slot.
type formState[K comparable] struct {
	guard      submitGuard
	mode       Mode
	originalID K
	lastErr    error
}

// Mode reports whether the next submit creates or updates
func (s *formState[K]) Mode() Mode {
	return s.mode
}

// InFlight reports whether a request is currently outstanding
func (s *formState[K]) InFlight() bool {
	return s.guard.inFlight
}

// Err returns the latest surfaced error; last error wins
func (s *formState[K]) Err() error {
	return s.lastErr
}

// ClearErr dismisses the error banner
func (s *formState[K]) ClearErr() {
	s.lastErr = nil
}

func (s *formState[K]) fail(err error) error {
	s.lastErr = err
	return err
}

func (s *formState[K]) reset() {
	var zero K
	s.mode = ModeAdd
	s.originalID = zero
	s.lastErr = nil
}

// MenuForm drives the add/edit lifecycle for menus
type MenuForm struct {
	formState[int64]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.Menu
}

// NewMenuForm creates a menu form bound to the given client and store
func NewMenuForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *MenuForm {
	return &MenuForm{client: client, store: st, confirm: confirm}
}

// Draft returns the current form draft
func (f *MenuForm) Draft() models.Menu { return f.draft }

// SetDraft replaces the current form draft
func (f *MenuForm) SetDraft(draft models.Menu) { f.draft = draft }

// BeginEdit pre-populates the form from the stored record and switches
// the next submit to an update
func (f *MenuForm) BeginEdit(id int64) error {
	for _, menu := range f.store.Menus() {
		if menu.ID == id {
			f.draft = menu
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("menu %d not found", id)})
}

// Cancel discards the draft and returns to add mode without touching
// the store
func (f *MenuForm) Cancel() {
	f.draft = models.Menu{}
	f.mode = ModeAdd
	f.originalID = 0
}

// Submit validates the draft and issues the create or update. A failed
// submit keeps the draft so no user input is lost.
func (f *MenuForm) Submit() error {
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

	var saved models.Menu
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateMenu(draft)
	} else {
		draft.ID = 0
		saved, err = f.client.CreateMenu(draft)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertMenu(saved)
	f.draft = models.Menu{}
	f.reset()
	return nil
}

// Delete removes a menu after confirmation. The delete is refused with
// a ConflictError while categories still reference the menu.
func (f *MenuForm) Delete(id int64) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this menu?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if n := len(f.store.CategoriesForMenu(id)); n > 0 {
		return f.fail(&models.ConflictError{
			Count:   n,
			Message: fmt.Sprintf("cannot delete menu: %d categories reference it", n),
		})
	}
	if err := f.client.DeleteMenu(id); err != nil {
		return f.fail(err)
	}
	if err := f.store.DeleteMenu(id); err != nil {
		return f.fail(err)
	}
	f.lastErr = nil
	return nil
}

// CategoryForm drives the add/edit lifecycle for menu categories
type CategoryForm struct {
	formState[int64]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.Category
}

// NewCategoryForm creates a category form bound to the given client and store
func NewCategoryForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *CategoryForm {
	return &CategoryForm{client: client, store: st, confirm: confirm}
}

// Draft returns the current form draft
func (f *CategoryForm) Draft() models.Category { return f.draft }

// SetDraft replaces the current form draft
func (f *CategoryForm) SetDraft(draft models.Category) { f.draft = draft }

// SetParentMenu resets the add draft's menu to the selected parent.
// An edit in progress keeps its original parent.
func (f *CategoryForm) SetParentMenu(menuID int64) {
	if f.mode == ModeAdd {
		f.draft.MenuID = menuID
	}
}

// BeginEdit pre-populates the form from the stored record
func (f *CategoryForm) BeginEdit(id int64) error {
	for _, category := range f.store.Categories() {
		if category.ID == id {
			f.draft = category
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("category %d not found", id)})
}

// Cancel discards the draft, keeping the selected parent menu
func (f *CategoryForm) Cancel() {
	f.draft = models.Category{MenuID: f.draft.MenuID}
	f.mode = ModeAdd
	f.originalID = 0
}

// Submit validates the draft and issues the create or update
func (f *CategoryForm) Submit() error {
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

	var saved models.Category
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateCategory(draft)
	} else {
		draft.ID = 0
		saved, err = f.client.CreateCategory(draft)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertCategory(saved)
	f.draft = models.Category{MenuID: f.draft.MenuID}
	f.reset()
	return nil
}

// Delete removes a category after confirmation. The delete is refused
// with a ConflictError while menu items still reference the category.
func (f *CategoryForm) Delete(id int64) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this category?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if n := len(f.store.ItemsForCategory(id)); n > 0 {
		return f.fail(&models.ConflictError{
			Count:   n,
			Message: fmt.Sprintf("cannot delete category: %d menu items reference it", n),
		})
	}
	if err := f.client.DeleteCategory(id); err != nil {
		return f.fail(err)
	}
	if err := f.store.DeleteCategory(id); err != nil {
		return f.fail(err)
	}
	f.lastErr = nil
	return nil
}

// ItemForm drives the add/edit lifecycle for menu items
type ItemForm struct {
	formState[int64]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.MenuItem
}

// NewItemForm creates a menu item form bound to the given client and store
func NewItemForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *ItemForm {
	return &ItemForm{client: client, store: st, confirm: confirm, draft: models.MenuItem{IsAvailable: true}}
}

// Draft returns the current form draft
func (f *ItemForm) Draft() models.MenuItem { return f.draft }

// SetDraft replaces the current form draft
func (f *ItemForm) SetDraft(draft models.MenuItem) { f.draft = draft }

// SetParentCategory resets the add draft's category to the selected parent
func (f *ItemForm) SetParentCategory(categoryID int64) {
	if f.mode == ModeAdd {
		f.draft.CategoryID = categoryID
	}
}

// BeginEdit pre-populates the form from the stored record
func (f *ItemForm) BeginEdit(id int64) error {
	for _, item := range f.store.MenuItems() {
		if item.ID == id {
			f.draft = item
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("menu item %d not found", id)})
}

// Cancel discards the draft, keeping the selected parent category
func (f *ItemForm) Cancel() {
	f.draft = models.MenuItem{CategoryID: f.draft.CategoryID, IsAvailable: true}
	f.mode = ModeAdd
	f.originalID = 0
}

// Submit validates the draft and issues the create or update
func (f *ItemForm) Submit() error {
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

	var saved models.MenuItem
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateMenuItem(draft)
	} else {
		draft.ID = 0
		saved, err = f.client.CreateMenuItem(draft)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertMenuItem(saved)
	f.draft = models.MenuItem{CategoryID: f.draft.CategoryID, IsAvailable: true}
	f.reset()
	return nil
}

// Delete removes a menu item after confirmation, cascading to its
// options in the same logical operation (the server deletes them, the
// store mirrors that).
func (f *ItemForm) Delete(id int64) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this menu item?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.client.DeleteMenuItem(id); err != nil {
		return f.fail(err)
	}
	f.store.DeleteMenuItem(id)
	f.lastErr = nil
	return nil
}

// ItemOptionForm drives the add/edit lifecycle for item options
type ItemOptionForm struct {
	formState[int64]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.ItemOption
}

// NewItemOptionForm creates an item option form bound to the given client and store
func NewItemOptionForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *ItemOptionForm {
	return &ItemOptionForm{client: client, store: st, confirm: confirm}
}

// Draft returns the current form draft
func (f *ItemOptionForm) Draft() models.ItemOption { return f.draft }

// SetDraft replaces the current form draft
func (f *ItemOptionForm) SetDraft(draft models.ItemOption) { f.draft = draft }

// SetParentItem resets the add draft's menu item to the selected parent
func (f *ItemOptionForm) SetParentItem(menuItemID int64) {
	if f.mode == ModeAdd {
		f.draft.MenuItemID = menuItemID
	}
}

// BeginEdit pre-populates the form from the stored record
func (f *ItemOptionForm) BeginEdit(id int64) error {
	for _, option := range f.store.ItemOptions() {
		if option.ID == id {
			f.draft = option
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("item option %d not found", id)})
}

// Cancel discards the draft, keeping the selected parent item
func (f *ItemOptionForm) Cancel() {
	f.draft = models.ItemOption{MenuItemID: f.draft.MenuItemID}
	f.mode = ModeAdd
	f.originalID = 0
}

// Submit validates the draft and issues the create or update
func (f *ItemOptionForm) Submit() error {
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

	var saved models.ItemOption
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateItemOption(draft)
	} else {
		draft.ID = 0
		saved, err = f.client.CreateItemOption(draft)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertItemOption(saved)
	f.draft = models.ItemOption{MenuItemID: f.draft.MenuItemID}
	f.reset()
	return nil
}

// Delete removes an item option after confirmation
func (f *ItemOptionForm) Delete(id int64) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this option?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.client.DeleteItemOption(id); err != nil {
		return f.fail(err)
	}
	f.store.RemoveItemOption(id)
	f.lastErr = nil
	return nil
}

// MenuSection bundles the four menu-side forms and keeps their parent
// selections in sync: selecting a menu cascades a default category,
// item and option parent down the chain.
type MenuSection struct {
	client *api.Client
	store  *store.Store

	Menus      *MenuForm
	Categories *CategoryForm
	Items      *ItemForm
	Options    *ItemOptionForm

	selectedMenu     int64
	selectedCategory int64
	selectedItem     int64
}

// NewMenuSection creates the menu section with all four forms sharing
// the same client, store and confirmation hook
func NewMenuSection(client *api.Client, st *store.Store, confirm ConfirmFunc) *MenuSection {
	return &MenuSection{
		client:     client,
		store:      st,
		Menus:      NewMenuForm(client, st, confirm),
		Categories: NewCategoryForm(client, st, confirm),
		Items:      NewItemForm(client, st, confirm),
		Options:    NewItemOptionForm(client, st, confirm),
	}
}

// Refresh fetches all four collections from the backend and replaces
// the store copies
func (s *MenuSection) Refresh() error {
	menus, err := s.client.ListMenus()
	if err != nil {
		return err
	}
	categories, err := s.client.ListCategories(0)
	if err != nil {
		return err
	}
	items, err := s.client.ListMenuItems(0)
	if err != nil {
		return err
	}
	options, err := s.client.ListItemOptions(0)
	if err != nil {
		return err
	}
	s.store.ReplaceAllMenus(menus)
	s.store.ReplaceAllCategories(categories)
	s.store.ReplaceAllMenuItems(items)
	s.store.ReplaceAllItemOptions(options)
	return nil
}

// SelectMenu makes a menu the active parent. The category form's
// default menu follows, and the selected category becomes the first
// category of the new menu (or none).
func (s *MenuSection) SelectMenu(id int64) {
	s.selectedMenu = id
	s.Categories.SetParentMenu(id)
	categories := s.store.CategoriesForMenu(id)
	if len(categories) > 0 {
		s.SelectCategory(categories[0].ID)
	} else {
		s.selectedCategory = 0
		s.Items.SetParentCategory(0)
		s.selectedItem = 0
		s.Options.SetParentItem(0)
	}
}

// SelectCategory makes a category the active parent for the item form
func (s *MenuSection) SelectCategory(id int64) {
	s.selectedCategory = id
	s.Items.SetParentCategory(id)
	items := s.store.ItemsForCategory(id)
	if len(items) > 0 {
		s.SelectItem(items[0].ID)
	} else {
		s.selectedItem = 0
		s.Options.SetParentItem(0)
	}
}

// SelectItem makes a menu item the active parent for the option form
func (s *MenuSection) SelectItem(id int64) {
	s.selectedItem = id
	s.Options.SetParentItem(id)
}

// SelectedMenu returns the active menu id, zero when none
func (s *MenuSection) SelectedMenu() int64 { return s.selectedMenu }

// SelectedCategory returns the active category id, zero when none
func (s *MenuSection) SelectedCategory() int64 { return s.selectedCategory }

// SelectedItem returns the active menu item id, zero when none
func (s *MenuSection) SelectedItem() int64 { return s.selectedItem }
