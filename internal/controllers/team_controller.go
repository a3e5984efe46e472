package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pubquiz-admin/internal/auth"
	"pubquiz-admin/internal/middleware"
	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/services"
)

// TeamController handles team login and profile endpoints
type TeamController interface {
	Login(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UploadProfilePicture(c *gin.Context)
}

type teamController struct {
	service   services.TeamService
	jwtSecret []byte
	uploadDir string
}

// NewTeamController creates a new instance of TeamController
func NewTeamController(service services.TeamService, jwtSecret []byte, uploadDir string) *teamController {
	return &teamController{service: service, jwtSecret: jwtSecret, uploadDir: uploadDir}
}

// Login godoc
// @Summary Log a team in
// @Description Log in with a team name and password. Unknown teams are registered on first login.
// @Tags teams
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Team credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /login [post]
func (c *teamController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("username and password are required"))
		return
	}
	team, err := c.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, models.NewAPIError("invalid credentials"))
			return
		}
		respondError(ctx, err)
		return
	}
	token, err := auth.GenerateToken(team.ID, team.Username, c.jwtSecret)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("internal server error"))
		return
	}
	ctx.JSON(http.StatusOK, models.LoginResponse{Token: token, Team: team})
}

// UpdateProfile godoc
// @Summary Update the authenticated team's profile
// @Tags teams
// @Accept json
// @Produce json
// @Param profile body models.TeamProfile true "Profile fields"
// @Success 200 {object} models.Team
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /teams/profile [put]
func (c *teamController) UpdateProfile(ctx *gin.Context) {
	teamID := ctx.GetInt64(middleware.TeamIDKey)
	var profile models.TeamProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil || profile.DisplayName == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("display_name is required"))
		return
	}
	team, err := c.service.UpdateProfile(teamID, profile)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, team)
}

// UploadProfilePicture godoc
// @Summary Upload the authenticated team's profile picture
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.Team
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /teams/profile-picture [post]
func (c *teamController) UploadProfilePicture(ctx *gin.Context) {
	teamID := ctx.GetInt64(middleware.TeamIDKey)
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("file is required"))
		return
	}
	// Random filename so uploads never collide or overwrite each other
	name := uuid.New().String() + filepath.Ext(file.Filename)
	dest := filepath.Join(c.uploadDir, name)
	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		logrus.WithError(err).Error("Failed to store uploaded file")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("internal server error"))
		return
	}
	team, err := c.service.SetProfilePicture(teamID, name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, team)
}
