package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

// respondErr maps service sentinels onto the response envelope. Anything
// unrecognized is an internal failure; the caller never sees a bare fault.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrUnknownTaskType),
		errors.Is(err, service.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	case errors.Is(err, service.ErrNotFoundOrUnauthorized):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrNameTaken):
		c.JSON(http.StatusConflict, serializer.ConflictErr(err.Error()))
	case errors.Is(err, service.ErrSelfModification):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("incorrect email or password"))
	case errors.Is(err, service.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("account disabled, contact an administrator"))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return uuid.Nil, false
	}
	return id, true
}

// parseDayFields reads jour_1..jour_31 from the form. Missing and
// non-numeric values become 0; negatives are clamped later, in the
// service. This mirrors the tolerant handling of the original entry form.
func parseDayFields(c *gin.Context) [model.DaysInRow]int {
	var days [model.DaysInRow]int
	for i := 1; i <= model.DaysInRow; i++ {
		raw := strings.TrimSpace(c.PostForm(fmt.Sprintf("jour_%d", i)))
		v, err := strconv.Atoi(raw)
		if err != nil {
			v = 0
		}
		days[i-1] = v
	}
	return days
}
