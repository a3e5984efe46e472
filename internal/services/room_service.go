package services

import (
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
)

// RoomService manages quiz rooms and their per-room menu settings.
// Room IDs are caller-chosen strings; a room owns at most one menu
// setting and deleting the room removes it too.
type RoomService interface {
	ListRooms() ([]models.Room, error)
	GetRoom(id string) (models.Room, error)
	CreateRoom(room models.Room) (models.Room, error)
	UpdateRoom(room models.Room) (models.Room, error)
	DeleteRoom(id string) error

	ListRoomMenuSettings() ([]models.RoomMenuSetting, error)
	GetRoomMenuSetting(roomID string) (models.RoomMenuSetting, error)
	CreateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error)
	UpdateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error)
	DeleteRoomMenuSetting(roomID string) error
}

type roomService struct {
	db *gorm.DB
}

// NewRoomService creates a new instance of RoomService
func NewRoomService(db *gorm.DB) RoomService {
	return &roomService{db: db}
}

func (s *roomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("created_at").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *roomService) GetRoom(id string) (models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "id = ?", id).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *roomService) CreateRoom(room models.Room) (models.Room, error) {
	var existing models.Room
	if err := s.db.First(&existing, "id = ?", room.ID).Error; err == nil {
		return models.Room{}, &models.ConflictError{Message: "a room with this ID already exists", Count: 1}
	}
	if err := s.db.Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *roomService) UpdateRoom(room models.Room) (models.Room, error) {
	var existing models.Room
	if err := s.db.First(&existing, "id = ?", room.ID).Error; err != nil {
		return models.Room{}, err
	}
	room.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *roomService) DeleteRoom(id string) error {
	if err := s.db.First(&models.Room{}, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomMenuSetting{}).Error; err != nil {
			return err
		}
		var questionIDs []int64
		if err := tx.Model(&models.Question{}).Where("room_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.QuestionOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id = ?", id).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Room{}, "id = ?", id).Error
	})
}

func (s *roomService) ListRoomMenuSettings() ([]models.RoomMenuSetting, error) {
	var settings []models.RoomMenuSetting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *roomService) GetRoomMenuSetting(roomID string) (models.RoomMenuSetting, error) {
	var setting models.RoomMenuSetting
	if err := s.db.First(&setting, "room_id = ?", roomID).Error; err != nil {
		return models.RoomMenuSetting{}, err
	}
	return setting, nil
}

func (s *roomService) CreateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error) {
	if err := s.db.First(&models.Room{}, "id = ?", setting.RoomID).Error; err != nil {
		return models.RoomMenuSetting{}, &models.ValidationError{Field: "room_id", Message: "room not found"}
	}
	if setting.MenuID != 0 {
		if err := s.db.First(&models.Menu{}, setting.MenuID).Error; err != nil {
			return models.RoomMenuSetting{}, &models.ValidationError{Field: "menu_id", Message: "menu not found"}
		}
	}
	var existing models.RoomMenuSetting
	if err := s.db.First(&existing, "room_id = ?", setting.RoomID).Error; err == nil {
		return models.RoomMenuSetting{}, &models.ConflictError{Message: "menu settings already exist for this room", Count: 1}
	}
	if err := s.db.Create(&setting).Error; err != nil {
		return models.RoomMenuSetting{}, err
	}
	return setting, nil
}

func (s *roomService) UpdateRoomMenuSetting(setting models.RoomMenuSetting) (models.RoomMenuSetting, error) {
	if err := s.db.First(&models.RoomMenuSetting{}, "room_id = ?", setting.RoomID).Error; err != nil {
		return models.RoomMenuSetting{}, err
	}
	if setting.MenuID != 0 {
		if err := s.db.First(&models.Menu{}, setting.MenuID).Error; err != nil {
			return models.RoomMenuSetting{}, &models.ValidationError{Field: "menu_id", Message: "menu not found"}
		}
	}
	if err := s.db.Save(&setting).Error; err != nil {
		return models.RoomMenuSetting{}, err
	}
	return setting, nil
}

func (s *roomService) DeleteRoomMenuSetting(roomID string) error {
	if err := s.db.First(&models.RoomMenuSetting{}, "room_id = ?", roomID).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.RoomMenuSetting{}, "room_id = ?", roomID).Error
}
