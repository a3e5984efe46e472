package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pubquiz-admin/internal/idgen"
	"pubquiz-admin/internal/models"
)

// ErrInvalidCredentials is returned when a known team presents the
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TeamService handles team login and profile management. Login is
// first-come registration: an unknown username creates the team, a
// known username must match the stored password hash.
type TeamService interface {
	Login(username, password string) (models.Team, error)
	GetTeam(id int64) (models.Team, error)
	UpdateProfile(teamID int64, profile models.TeamProfile) (models.Team, error)
	SetProfilePicture(teamID int64, path string) (models.Team, error)
}

type teamService struct {
	db *gorm.DB
}

// NewTeamService creates a new instance of TeamService
func NewTeamService(db *gorm.DB) TeamService {
	return &teamService{db: db}
}

func (s *teamService) Login(username, password string) (models.Team, error) {
	var team models.Team
	err := s.db.First(&team, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return models.Team{}, hashErr
		}
		team = models.Team{
			ID:           idgen.NextID(),
			Username:     username,
			DisplayName:  username,
			PasswordHash: string(hash),
		}
		if err := s.db.Create(&team).Error; err != nil {
			return models.Team{}, err
		}
		return team, nil
	}
	if err != nil {
		return models.Team{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(password)) != nil {
		return models.Team{}, ErrInvalidCredentials
	}
	return team, nil
}

func (s *teamService) GetTeam(id int64) (models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (s *teamService) UpdateProfile(teamID int64, profile models.TeamProfile) (models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	team.DisplayName = profile.DisplayName
	if err := s.db.Save(&team).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (s *teamService) SetProfilePicture(teamID int64, path string) (models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	team.ProfilePicturePath = path
	if err := s.db.Save(&team).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}
