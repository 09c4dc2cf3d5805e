package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/api/metrics"
	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

type RegistrationHandler struct {
	flow          ports.RegistrationService
	navigator     ports.Navigator
	scheduler     ports.Scheduler
	redirectDelay time.Duration
}

// NewRegistrationHandler returns a handler that moves the view to the login
// page redirectDelay after a successful registration.
func NewRegistrationHandler(
	flow ports.RegistrationService,
	navigator ports.Navigator,
	scheduler ports.Scheduler,
	redirectDelay time.Duration,
) *RegistrationHandler {
	return &RegistrationHandler{
		flow:          flow,
		navigator:     navigator,
		scheduler:     scheduler,
		redirectDelay: redirectDelay,
	}
}

type registerRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	DOB        string `json:"dob"`
	CPF        string `json:"cpf"`
	Bio        string `json:"bio"`
	City       string `json:"city"`
	Parish     string `json:"parish"`
	YouthGroup string `json:"youthGroup"`
}

func (r registerRequest) profile() domain.UserProfile {
	return domain.UserProfile{
		FullName:    r.FullName,
		Email:       r.Email,
		DateOfBirth: r.DOB,
		DocumentID:  r.CPF,
		Bio:         r.Bio,
		City:        r.City,
		Parish:      r.Parish,
		YouthGroup:  r.YouthGroup,
		// Self-registration never grants administrator rights.
		IsAdmin: false,
	}
}

// Register creates the account and writes the public profile. Form checks run
// inside the flow so that rejections also show up in its status.
//
// @Summary      Register a new member
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  domain.FlowStatus
// @Failure      409   {object}  domain.FlowStatus
// @Failure      422   {object}  domain.FlowStatus
// @Failure      502   {object}  domain.FlowStatus
// @Router       /auth/register [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	start := time.Now()
	err := h.flow.Register(c.Request().Context(), req.profile(), req.Password)
	metrics.FlowDuration.WithLabelValues("registration").Observe(time.Since(start).Seconds())
	metrics.RegistrationsTotal.WithLabelValues(outcomeOf(err)).Inc()

	status := requestStatus(err, domain.MsgRegistered)
	if err != nil {
		return c.JSON(HTTPStatus(err), status)
	}

	h.scheduler.PostAfter(h.redirectDelay, func() {
		h.navigator.Navigate(domain.PageLogin)
	})
	return c.JSON(http.StatusCreated, status)
}

// Status returns the registration flow status.
//
// @Summary      Registration status
// @Tags         registration
// @Produce      json
// @Success      200   {object}  domain.FlowStatus
// @Router       /auth/register/status [get]
func (h *RegistrationHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.flow.Status())
}
