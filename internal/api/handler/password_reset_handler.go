package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/api/metrics"
	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

type PasswordResetHandler struct {
	flow ports.PasswordResetService
}

func NewPasswordResetHandler(flow ports.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{flow: flow}
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetResponse struct {
	domain.FlowStatus
	// Email is what the form should show next: cleared after a successful request.
	Email string `json:"email"`
}

// Request asks the provider to email a password-reset link.
//
// @Summary      Request a password reset
// @Tags         password-reset
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequest  true  "Account email"
// @Success      200   {object}  resetResponse
// @Failure      404   {object}  resetResponse
// @Failure      422   {object}  resetResponse
// @Failure      502   {object}  resetResponse
// @Router       /auth/password-reset [post]
func (h *PasswordResetHandler) Request(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	start := time.Now()
	err := h.flow.RequestReset(c.Request().Context(), req.Email)
	metrics.FlowDuration.WithLabelValues("password_reset").Observe(time.Since(start).Seconds())
	metrics.PasswordResetsTotal.WithLabelValues(outcomeOf(err)).Inc()

	status := requestStatus(err, domain.MsgResetLinkSent)
	if err != nil {
		return c.JSON(HTTPStatus(err), resetResponse{FlowStatus: status, Email: req.Email})
	}
	return c.JSON(http.StatusOK, resetResponse{FlowStatus: status})
}

// Status returns the password-reset flow status.
//
// @Summary      Password-reset status
// @Tags         password-reset
// @Produce      json
// @Success      200   {object}  domain.FlowStatus
// @Router       /auth/password-reset/status [get]
func (h *PasswordResetHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.flow.Status())
}
