package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Menu{}, &models.Category{}, &models.MenuItem{}, &models.ItemOption{},
		&models.Room{}, &models.RoomMenuSetting{},
		&models.Question{}, &models.QuestionOption{},
	))

	menus := NewMenuController(services.NewMenuService(db))
	rooms := NewRoomController(services.NewRoomService(db))
	questions := NewQuestionController(services.NewQuestionService(db))

	router := gin.New()
	router.GET("/menus", menus.GetAllMenus)
	router.POST("/menus", menus.CreateMenu)
	router.GET("/menus/:id", menus.GetMenuByID)
	router.DELETE("/menus/:id", menus.DeleteMenu)
	router.POST("/categories", menus.CreateCategory)
	router.GET("/menu-items/by-menu/:menu_id", menus.GetMenuItemsByMenu)
	router.GET("/menu-items/:id", menus.GetMenuItemByID)
	router.POST("/rooms", rooms.CreateRoom)
	router.GET("/room-menu-settings/:room_id", rooms.GetRoomMenuSetting)
	router.POST("/room-menu-settings", rooms.CreateRoomMenuSetting)
	router.POST("/questions", questions.CreateQuestion)
	router.PATCH("/questions/:id/activate", questions.ActivateQuestion)
	router.POST("/options/bulk/:question_id", questions.ReplaceQuestionOptions)
	router.GET("/options", questions.GetQuestionOptions)
	return router, db
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr.Detail
}

func TestCreateAndGetMenu(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/menus", models.Menu{Name: "Main Food Menu"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
}

func TestGetMenuNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/menus/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", decodeDetail(t, w))
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/menus/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMenuConflictBody(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Menu{ID: 1, Name: "Main Food Menu"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: 10, MenuID: 1, Name: "Food"}).Error)

	w := doJSON(t, router, http.MethodDelete, "/menus/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cannot delete menu: 1 categories reference it", decodeDetail(t, w))
}

func TestCreateCategoryUnknownMenuIsBadRequest(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/categories", models.Category{MenuID: 999, Name: "Orphan"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeDetail(t, w), "menu not found")
}

func TestByMenuRouteDoesNotClashWithItemRoute(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Menu{ID: 1, Name: "Main Food Menu"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: 10, MenuID: 1, Name: "Food"}).Error)
	require.NoError(t, db.Create(&models.MenuItem{ID: 100, CategoryID: 10, Name: "Pub Burger", Price: 12.99}).Error)

	w := doJSON(t, router, http.MethodGet, "/menu-items/by-menu/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = doJSON(t, router, http.MethodGet, "/menu-items/100", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDuplicateRoomIsConflict(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/rooms", models.Room{ID: "sample_room", Name: "Sample Pub Quiz"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/rooms", models.Room{ID: "sample_room", Name: "Clone"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "a room with this ID already exists", decodeDetail(t, w))
}

func TestSettingLifecycleOverHTTP(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Room{ID: "sample_room", Name: "Sample Pub Quiz"}).Error)
	require.NoError(t, db.Create(&models.Menu{ID: 1, Name: "Main Food Menu"}).Error)

	// Absent setting answers 404 so clients can pick create over update
	w := doJSON(t, router, http.MethodGet, "/room-menu-settings/sample_room", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/room-menu-settings",
		models.RoomMenuSetting{RoomID: "sample_room", ShowMenu: true, MenuID: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/room-menu-settings/sample_room", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkOptionsEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Room{ID: "sample_room", Name: "Sample Pub Quiz"}).Error)

	w := doJSON(t, router, http.MethodPost, "/questions", models.Question{
		RoomID: "sample_room", Text: "Capital of France?",
		QuestionType: models.QuestionTypeMultipleChoice, CorrectAnswer: "B", Points: 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var question models.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))

	w = doJSON(t, router, http.MethodPost, "/options/bulk/"+itoa(question.ID), bulkOptionsRequest{
		Options: []models.QuestionOption{
			{OptionLetter: "A", OptionText: "London"},
			{OptionLetter: "B", OptionText: "Paris"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/options?question_id="+itoa(question.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var options []models.QuestionOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Len(t, options, 2)
}

func TestActivateEndpointFlipsFlag(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Room{ID: "sample_room", Name: "Sample Pub Quiz"}).Error)
	require.NoError(t, db.Create(&models.Question{
		ID: 1, RoomID: "sample_room", Text: "Q", QuestionType: models.QuestionTypeText,
		CorrectAnswer: "x", Points: 1, IsActive: false,
	}).Error)

	w := doJSON(t, router, http.MethodPatch, "/questions/1/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var question models.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))
	assert.True(t, question.IsActive)
}
