package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pubquiz-admin/internal/models"
)

// respondError translates service errors into the wire error shape.
// Every error body is {"detail": "..."} so clients surface the same
// message regardless of which endpoint failed.
func respondError(ctx *gin.Context, err error) {
	var conflict *models.ConflictError
	var validation *models.ValidationError
	switch {
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, models.NewAPIError(conflict.Message))
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(validation.Error()))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError("not found"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("internal server error"))
	}
}

// pathID parses a numeric :id path parameter, replying 400 on garbage.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid "+name))
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter, zero when absent.
func queryID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid "+name))
		return 0, false
	}
	return id, true
}
