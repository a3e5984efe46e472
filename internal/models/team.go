package models

import "time"

// Team is a quiz team account used by the profile endpoints. The
// password hash is never serialized.
type Team struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Username           string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	PasswordHash       string    `json:"-" gorm:"not null"`
	DisplayName        string    `json:"display_name"`
	ProfilePicturePath string    `json:"profile_picture_path"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TeamProfile is the payload accepted by the profile update endpoint
type TeamProfile struct {
	DisplayName string `json:"display_name" validate:"required"`
}

// LoginRequest is the credentials payload for POST /login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token issued on login
type LoginResponse struct {
	Token string `json:"token"`
	Team  Team   `json:"team"`
}
