package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/api/metrics"
	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

type SessionHandler struct {
	session ports.SessionService
}

func NewSessionHandler(session ports.SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorBody struct {
	Error   string                 `json:"error"`
	Session domain.SessionSnapshot `json:"session"`
}

// Login signs the member in. The provider decides whether the credentials are
// acceptable, so the payload is not validated locally.
//
// @Summary      Sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  domain.SessionSnapshot
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  errorBody
// @Failure      429   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	start := time.Now()
	err := h.session.SignIn(c.Request().Context(), req.Email, req.Password)
	metrics.FlowDuration.WithLabelValues("sign_in").Observe(time.Since(start).Seconds())
	metrics.SessionOperationsTotal.WithLabelValues("sign_in", outcomeOf(err)).Inc()

	if err != nil {
		return c.JSON(HTTPStatus(err), errorBody{Error: messageOf(err), Session: h.session.Snapshot()})
	}
	return c.JSON(http.StatusOK, h.session.Snapshot())
}

// Signup creates an account with only email and password.
//
// @Summary      Quick sign up
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      201   {object}  domain.SessionSnapshot
// @Failure      409   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /auth/signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	start := time.Now()
	err := h.session.SignUp(c.Request().Context(), req.Email, req.Password)
	metrics.FlowDuration.WithLabelValues("sign_up").Observe(time.Since(start).Seconds())
	metrics.SessionOperationsTotal.WithLabelValues("sign_up", outcomeOf(err)).Inc()

	if err != nil {
		return c.JSON(HTTPStatus(err), errorBody{Error: messageOf(err), Session: h.session.Snapshot()})
	}
	return c.JSON(http.StatusCreated, h.session.Snapshot())
}

// Logout signs the member out. On failure the session is unchanged.
//
// @Summary      Sign out
// @Tags         session
// @Produce      json
// @Success      200   {object}  domain.SessionSnapshot
// @Failure      502   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.SignOut(c.Request().Context()); err != nil {
		metrics.SessionOperationsTotal.WithLabelValues("sign_out", metrics.OutcomeProviderError).Inc()
		return err
	}
	metrics.SessionOperationsTotal.WithLabelValues("sign_out", metrics.OutcomeSuccess).Inc()
	return c.JSON(http.StatusOK, h.session.Snapshot())
}

// Current returns the session snapshot.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200   {object}  domain.SessionSnapshot
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.Snapshot())
}
