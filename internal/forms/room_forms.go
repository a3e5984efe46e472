package forms

import (
	"fmt"

	"pubquiz-admin/internal/api"
	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/store"
)

// RoomForm drives the add/edit lifecycle for rooms. Room IDs are
// caller-chosen and immutable, so an edit always keeps the original ID.
type RoomForm struct {
	formState[string]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.Room
}

// NewRoomForm creates a room form bound to the given client and store
func NewRoomForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *RoomForm {
	return &RoomForm{client: client, store: st, confirm: confirm, draft: models.Room{IsActive: true}}
}

// Draft returns the current form draft
func (f *RoomForm) Draft() models.Room { return f.draft }

// SetDraft replaces the current form draft
func (f *RoomForm) SetDraft(draft models.Room) { f.draft = draft }

// BeginEdit pre-populates the form from the stored record
func (f *RoomForm) BeginEdit(id string) error {
	for _, room := range f.store.Rooms() {
		if room.ID == id {
			f.draft = room
			f.mode = ModeEditing
			f.originalID = id
			return nil
		}
	}
	return f.fail(&models.ValidationError{Message: fmt.Sprintf("room %q not found", id)})
}

// Cancel discards the draft and returns to add mode
func (f *RoomForm) Cancel() {
	f.draft = models.Room{IsActive: true}
	f.mode = ModeAdd
	f.originalID = ""
}

// Submit validates the draft and issues the create or update. Creating
// a room whose ID already exists in the store is rejected before any
// network call.
func (f *RoomForm) Submit() error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	draft := f.draft
	if f.mode == ModeEditing {
		// the ID field is immutable while editing
		draft.ID = f.originalID
	}
	if err := validateStruct(draft); err != nil {
		return f.fail(err)
	}
	if f.mode == ModeAdd {
		for _, room := range f.store.Rooms() {
			if room.ID == draft.ID {
				return f.fail(&models.ValidationError{Field: "ID", Message: "a room with this ID already exists"})
			}
		}
	}

	var saved models.Room
	var err error
	if f.mode == ModeEditing {
		saved, err = f.client.UpdateRoom(draft)
	} else {
		saved, err = f.client.CreateRoom(draft)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertRoom(saved)
	f.draft = models.Room{IsActive: true}
	f.reset()
	return nil
}

// Delete removes a room after confirmation. The room's menu setting is
// removed in the same logical operation.
func (f *RoomForm) Delete(id string) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to delete this room?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.client.DeleteRoom(id); err != nil {
		return f.fail(err)
	}
	f.store.DeleteRoom(id)
	f.lastErr = nil
	return nil
}

// RoomMenuSettingForm drives the create-or-update lifecycle of a
// room's menu setting. At most one setting exists per room, so submit
// first checks the backend for an existing row to pick POST vs PUT.
type RoomMenuSettingForm struct {
	formState[string]
	client  *api.Client
	store   *store.Store
	confirm ConfirmFunc
	draft   models.RoomMenuSetting
	open    bool
}

// NewRoomMenuSettingForm creates a setting form bound to the given client and store
func NewRoomMenuSettingForm(client *api.Client, st *store.Store, confirm ConfirmFunc) *RoomMenuSettingForm {
	return &RoomMenuSettingForm{client: client, store: st, confirm: confirm}
}

// Draft returns the current form draft
func (f *RoomMenuSettingForm) Draft() models.RoomMenuSetting { return f.draft }

// SetDraft replaces the current form draft
func (f *RoomMenuSettingForm) SetDraft(draft models.RoomMenuSetting) { f.draft = draft }

// Open reports whether the setting form is currently shown
func (f *RoomMenuSettingForm) Open() bool { return f.open }

// Manage opens the setting form for a room, pre-populated with the
// existing setting or with defaults (show the menu, first available
// menu preselected).
func (f *RoomMenuSettingForm) Manage(roomID string) {
	if setting, ok := f.store.SettingForRoom(roomID); ok {
		f.draft = setting
	} else {
		var menuID int64
		if menus := f.store.Menus(); len(menus) > 0 {
			menuID = menus[0].ID
		}
		f.draft = models.RoomMenuSetting{RoomID: roomID, ShowMenu: true, MenuID: menuID}
	}
	f.open = true
}

// Cancel closes the setting form without touching the store
func (f *RoomMenuSettingForm) Cancel() {
	f.open = false
	f.draft = models.RoomMenuSetting{}
}

// Submit saves the setting. An existence check against the backend
// picks create vs update; only a 404 counts as "absent", any other
// failure propagates instead of silently defaulting to create.
func (f *RoomMenuSettingForm) Submit() error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	draft := f.draft
	if err := validateStruct(draft); err != nil {
		return f.fail(err)
	}
	if draft.ShowMenu && draft.MenuID == 0 {
		return f.fail(&models.ValidationError{Field: "MenuID", Message: "a menu must be selected when the menu is shown"})
	}

	var saved models.RoomMenuSetting
	_, err := f.client.GetRoomMenuSetting(draft.RoomID)
	switch {
	case err == nil:
		saved, err = f.client.UpdateRoomMenuSetting(draft)
	case models.IsNotFound(err):
		saved, err = f.client.CreateRoomMenuSetting(draft)
	default:
		return f.fail(err)
	}
	if err != nil {
		return f.fail(err)
	}

	f.store.UpsertRoomMenuSetting(saved)
	f.open = false
	f.draft = models.RoomMenuSetting{}
	f.reset()
	return nil
}

// Delete removes a room's menu setting after confirmation
func (f *RoomMenuSettingForm) Delete(roomID string) error {
	if f.confirm != nil && !f.confirm("Are you sure you want to remove this room's menu settings?") {
		return nil
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.client.DeleteRoomMenuSetting(roomID); err != nil {
		return f.fail(err)
	}
	f.store.RemoveRoomMenuSetting(roomID)
	f.lastErr = nil
	return nil
}

// RoomSection bundles the room form and the room menu setting form
type RoomSection struct {
	client *api.Client
	store  *store.Store

	Rooms    *RoomForm
	Settings *RoomMenuSettingForm
}

// NewRoomSection creates the room section with both forms sharing the
// same client, store and confirmation hook
func NewRoomSection(client *api.Client, st *store.Store, confirm ConfirmFunc) *RoomSection {
	return &RoomSection{
		client:   client,
		store:    st,
		Rooms:    NewRoomForm(client, st, confirm),
		Settings: NewRoomMenuSettingForm(client, st, confirm),
	}
}

// Refresh fetches rooms, settings and the available menus from the
// backend and replaces the store copies
func (s *RoomSection) Refresh() error {
	rooms, err := s.client.ListRooms()
	if err != nil {
		return err
	}
	settings, err := s.client.ListRoomMenuSettings()
	if err != nil {
		return err
	}
	menus, err := s.client.ListMenus()
	if err != nil {
		return err
	}
	s.store.ReplaceAllRooms(rooms)
	s.store.ReplaceAllRoomMenuSettings(settings)
	s.store.ReplaceAllMenus(menus)
	return nil
}
