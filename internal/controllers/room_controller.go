package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/services"
)

// RoomController handles HTTP requests for rooms and room menu settings
type RoomController interface {
	GetAllRooms(c *gin.Context)
	GetRoomByID(c *gin.Context)
	CreateRoom(c *gin.Context)
	UpdateRoom(c *gin.Context)
	DeleteRoom(c *gin.Context)

	GetAllRoomMenuSettings(c *gin.Context)
	GetRoomMenuSetting(c *gin.Context)
	CreateRoomMenuSetting(c *gin.Context)
	UpdateRoomMenuSetting(c *gin.Context)
	DeleteRoomMenuSetting(c *gin.Context)
}

type roomController struct {
	service services.RoomService
}

// NewRoomController creates a new instance of RoomController
func NewRoomController(service services.RoomService) *roomController {
	return &roomController{service: service}
}

// GetAllRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} models.Room
// @Failure 500 {object} models.APIError
// @Router /rooms [get]
func (c *roomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.service.ListRooms()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rooms)
}

// GetRoomByID godoc
// @Summary Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} models.APIError
// @Router /rooms/{id} [get]
func (c *roomController) GetRoomByID(ctx *gin.Context) {
	room, err := c.service.GetRoom(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

// CreateRoom godoc
// @Summary Create a room
// @Description Create a room with a caller-chosen string ID
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body models.Room true "Room object"
// @Success 201 {object} models.Room
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /rooms [post]
func (c *roomController) CreateRoom(ctx *gin.Context) {
	var room models.Room
	if err := ctx.ShouldBindJSON(&room); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	if room.ID == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("id: is required"))
		return
	}
	created, err := c.service.CreateRoom(room)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body models.Room true "Room object"
// @Success 200 {object} models.Room
// @Failure 404 {object} models.APIError
// @Router /rooms/{id} [put]
func (c *roomController) UpdateRoom(ctx *gin.Context) {
	var room models.Room
	if err := ctx.ShouldBindJSON(&room); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	room.ID = ctx.Param("id")
	updated, err := c.service.UpdateRoom(room)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Delete a room together with its menu setting and questions
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /rooms/{id} [delete]
func (c *roomController) DeleteRoom(ctx *gin.Context) {
	if err := c.service.DeleteRoom(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllRoomMenuSettings godoc
// @Summary List room menu settings
// @Tags room-menu-settings
// @Produce json
// @Success 200 {array} models.RoomMenuSetting
// @Failure 500 {object} models.APIError
// @Router /room-menu-settings [get]
func (c *roomController) GetAllRoomMenuSettings(ctx *gin.Context) {
	settings, err := c.service.ListRoomMenuSettings()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// GetRoomMenuSetting godoc
// @Summary Get the menu setting of a room
// @Tags room-menu-settings
// @Produce json
// @Param room_id path string true "Room ID"
// @Success 200 {object} models.RoomMenuSetting
// @Failure 404 {object} models.APIError
// @Router /room-menu-settings/{room_id} [get]
func (c *roomController) GetRoomMenuSetting(ctx *gin.Context) {
	setting, err := c.service.GetRoomMenuSetting(ctx.Param("room_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, setting)
}

// CreateRoomMenuSetting godoc
// @Summary Create a room menu setting
// @Description Create the menu setting for a room. Fails with 409 when one already exists.
// @Tags room-menu-settings
// @Accept json
// @Produce json
// @Param setting body models.RoomMenuSetting true "Room menu setting object"
// @Success 201 {object} models.RoomMenuSetting
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /room-menu-settings [post]
func (c *roomController) CreateRoomMenuSetting(ctx *gin.Context) {
	var setting models.RoomMenuSetting
	if err := ctx.ShouldBindJSON(&setting); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateRoomMenuSetting(setting)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateRoomMenuSetting godoc
// @Summary Update a room menu setting
// @Tags room-menu-settings
// @Accept json
// @Produce json
// @Param room_id path string true "Room ID"
// @Param setting body models.RoomMenuSetting true "Room menu setting object"
// @Success 200 {object} models.RoomMenuSetting
// @Failure 404 {object} models.APIError
// @Router /room-menu-settings/{room_id} [put]
func (c *roomController) UpdateRoomMenuSetting(ctx *gin.Context) {
	var setting models.RoomMenuSetting
	if err := ctx.ShouldBindJSON(&setting); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	setting.RoomID = ctx.Param("room_id")
	updated, err := c.service.UpdateRoomMenuSetting(setting)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteRoomMenuSetting godoc
// @Summary Delete a room menu setting
// @Tags room-menu-settings
// @Produce json
// @Param room_id path string true "Room ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /room-menu-settings/{room_id} [delete]
func (c *roomController) DeleteRoomMenuSetting(ctx *gin.Context) {
	if err := c.service.DeleteRoomMenuSetting(ctx.Param("room_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
