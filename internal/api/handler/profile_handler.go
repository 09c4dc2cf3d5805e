package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/api/middleware"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Current returns the public profile of the account the session middleware
// admitted the request as.
//
// @Summary      Current profile
// @Tags         profile
// @Produce      json
// @Success      200   {object}  domain.ProfileRecord
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Current(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	record, err := h.profiles.Current(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}
