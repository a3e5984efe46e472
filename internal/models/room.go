package models

import "time"

// Room is a quiz room. The ID is chosen by the caller on creation
// (e.g. "weekly_quiz") and is immutable afterwards.
type Room struct {
	ID        string    `json:"id" gorm:"primaryKey" validate:"required"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomMenuSetting controls whether and which food menu a room shows.
// At most one setting exists per room.
type RoomMenuSetting struct {
	RoomID          string `json:"room_id" gorm:"primaryKey" validate:"required"`
	ShowMenu        bool   `json:"show_menu"`
	MenuID          int64  `json:"menu_id"`
	MenuDescription string `json:"menu_description"`
}
