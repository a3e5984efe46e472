package forms

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubquiz-admin/internal/models"
)

func TestRoomFormRejectsDuplicateID(t *testing.T) {
	backend := newFakeBackend(t)
	st := newTestStore()
	st.ReplaceAllRooms([]models.Room{{ID: "weekly_quiz", Name: "Weekly Trivia Night"}})

	form := NewRoomForm(backend.client(), st, AlwaysConfirm)
	form.SetDraft(models.Room{ID: "weekly_quiz", Name: "Clone"})

	err := form.Submit()
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "a room with this ID already exists", validation.Message)
	assert.Equal(t, int64(0), backend.requests.Load())
}

func TestRoomFormEditKeepsOriginalID(t *testing.T) {
	backend := newFakeBackend(t)
	echoHandler(backend, "PUT /rooms/{id}", http.StatusOK, func(r *models.Room) {})
	st := newTestStore()
	st.ReplaceAllRooms([]models.Room{{ID: "sample_room", Name: "Sample Pub Quiz"}})

	form := NewRoomForm(backend.client(), st, AlwaysConfirm)
	require.NoError(t, form.BeginEdit("sample_room"))

	draft := form.Draft()
	draft.ID = "something_else"
	draft.Name = "Renamed"
	form.SetDraft(draft)
	require.NoError(t, form.Submit())

	rooms := st.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, "sample_room", rooms[0].ID)
	assert.Equal(t, "Renamed", rooms[0].Name)
}

func TestRoomFormDeleteCascadesSetting(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("DELETE /rooms/{id}", http.StatusNoContent, nil)
	st := newTestStore()
	st.ReplaceAllRooms([]models.Room{{ID: "sample_room", Name: "Sample Pub Quiz"}})
	st.UpsertRoomMenuSetting(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})

	form := NewRoomForm(backend.client(), st, AlwaysConfirm)
	require.NoError(t, form.Delete("sample_room"))

	assert.Empty(t, st.Rooms())
	_, ok := st.SettingForRoom("sample_room")
	assert.False(t, ok)
}

func TestSettingFormManagePrefersExisting(t *testing.T) {
	backend := newFakeBackend(t)
	st := newTestStore()
	st.UpsertRoomMenuSetting(models.RoomMenuSetting{
		RoomID: "sample_room", ShowMenu: true, MenuID: 2, MenuDescription: "Enjoy!",
	})

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.Manage("sample_room")

	assert.True(t, form.Open())
	assert.Equal(t, int64(2), form.Draft().MenuID)
	assert.Equal(t, "Enjoy!", form.Draft().MenuDescription)
}

func TestSettingFormManageDefaultsToFirstMenu(t *testing.T) {
	backend := newFakeBackend(t)
	st := newTestStore()
	st.ReplaceAllMenus([]models.Menu{{ID: 5, Name: "Main Food Menu"}, {ID: 6, Name: "Drinks Menu"}})

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.Manage("test_room")

	draft := form.Draft()
	assert.True(t, draft.ShowMenu)
	assert.Equal(t, int64(5), draft.MenuID)
	assert.Equal(t, "test_room", draft.RoomID)
}

func TestSettingFormCreatesWhenAbsent(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("GET /room-menu-settings/{room_id}", http.StatusNotFound, models.NewAPIError("not found"))
	echoHandler(backend, "POST /room-menu-settings", http.StatusCreated, func(s *models.RoomMenuSetting) {})
	st := newTestStore()
	st.ReplaceAllMenus([]models.Menu{{ID: 1, Name: "Main Food Menu"}})

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.Manage("sample_room")
	require.NoError(t, form.Submit())

	setting, ok := st.SettingForRoom("sample_room")
	require.True(t, ok)
	assert.Equal(t, int64(1), setting.MenuID)
	assert.False(t, form.Open())
}

func TestSettingFormUpdatesWhenPresent(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("GET /room-menu-settings/{room_id}", http.StatusOK,
		models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})
	var sawPut bool
	backend.mux.HandleFunc("PUT /room-menu-settings/{room_id}", func(w http.ResponseWriter, r *http.Request) {
		sawPut = true
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"room_id":"sample_room","show_menu":true,"menu_id":2}`))
	})
	st := newTestStore()

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.SetDraft(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 2})
	require.NoError(t, form.Submit())

	assert.True(t, sawPut)
	setting, _ := st.SettingForRoom("sample_room")
	assert.Equal(t, int64(2), setting.MenuID)
}

func TestSettingFormPropagatesExistenceCheckFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("GET /room-menu-settings/{room_id}", http.StatusInternalServerError, models.NewAPIError("db down"))
	st := newTestStore()

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.SetDraft(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})

	err := form.Submit()
	var remote *models.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	// Only the existence check went out, no create was attempted
	assert.Equal(t, int64(1), backend.requests.Load())
}

func TestSettingFormRequiresMenuWhenShown(t *testing.T) {
	backend := newFakeBackend(t)
	st := newTestStore()

	form := NewRoomMenuSettingForm(backend.client(), st, AlwaysConfirm)
	form.SetDraft(models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 0})

	err := form.Submit()
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, int64(0), backend.requests.Load())
}

func TestRoomSectionRefresh(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("GET /rooms", http.StatusOK, []models.Room{{ID: "sample_room", Name: "Sample Pub Quiz"}})
	backend.handle("GET /room-menu-settings", http.StatusOK, []models.RoomMenuSetting{
		{RoomID: "sample_room", ShowMenu: true, MenuID: 1},
	})
	backend.handle("GET /menus", http.StatusOK, []models.Menu{{ID: 1, Name: "Main Food Menu"}})
	st := newTestStore()

	section := NewRoomSection(backend.client(), st, AlwaysConfirm)
	require.NoError(t, section.Refresh())

	assert.Len(t, st.Rooms(), 1)
	assert.Equal(t, "Main Food Menu", st.MenuName(1))
	_, ok := st.SettingForRoom("sample_room")
	assert.True(t, ok)
}
