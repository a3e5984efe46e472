package api

import (
	"net/url"

	"pubquiz-admin/internal/models"
)

// ListRooms retrieves all rooms
func (c *Client) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := c.get("/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom retrieves a single room by its caller-chosen ID
func (c *Client) GetRoom(id string) (models.Room, error) {
	var room models.Room
	if err := c.get("/rooms/"+url.PathEscape(id), nil, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// CreateRoom creates a room with the caller-chosen ID
func (c *Client) CreateRoom(room models.Room) (models.Room, error) {
	var created models.Room
	if err := c.post("/rooms", room, &created); err != nil {
		return models.Room{}, err
	}
	return created, nil
}

// UpdateRoom replaces the room identified by room.ID
func (c *Client) UpdateRoom(room models.Room) (models.Room, error) {
	var updated models.Room
	if err := c.put("/rooms/"+url.PathEscape(room.ID), room, &updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// DeleteRoom deletes a room by ID. The server cascades the delete to
// the room's menu setting.
func (c *Client) DeleteRoom(id string) error {
	return c.delete("/rooms/" + url.PathEscape(id))
}

// ListRoomMenuSettings retrieves every room menu setting
func (c *Client) ListRoomMenuSettings() ([]models.RoomMenuSetting, error) {
	var settings []models.RoomMenuSetting
	if err := c.get("/room-menu-settings", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetRoomMenuSetting retrieves the menu setting of a room. A missing
// setting surfaces as a 404 RemoteError; use models.IsNotFound to tell
// it apart from other failures.
func (c *Client) GetRoomMenuSetting(roomID string) (models.RoomMenuSetting, error) {
	var setting models.RoomMenuSetting
	if err := c.get("/room-menu-settings/"+url.PathEscape(roomID), nil, &setting); err != nil {
		return models.RoomMenuSetting{}, err
	}
	return setting, nil
}

// CreateRoomMenuSetting creates the setting for setting.RoomID. The
// server rejects a second setting for the same room.
func (c *Client) CreateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error) {
	var created models.RoomMenuSetting
	if err := c.post("/room-menu-settings", setting, &created); err != nil {
		return models.RoomMenuSetting{}, err
	}
	return created, nil
}

// UpdateRoomMenuSetting replaces the setting of setting.RoomID
func (c *Client) UpdateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error) {
	var updated models.RoomMenuSetting
	if err := c.put("/room-menu-settings/"+url.PathEscape(setting.RoomID), setting, &updated); err != nil {
		return models.RoomMenuSetting{}, err
	}
	return updated, nil
}

// DeleteRoomMenuSetting deletes the menu setting of a room
func (c *Client) DeleteRoomMenuSetting(roomID string) error {
	return c.delete("/room-menu-settings/" + url.PathEscape(roomID))
}
