package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/infrastructure/navigation"
)

// PageRouter is the view router the navigation endpoints drive.
type PageRouter interface {
	Current() domain.Destination
	Open(path string) domain.Destination
	History() []navigation.Entry
}

type NavigationHandler struct {
	router PageRouter
}

func NewNavigationHandler(router PageRouter) *NavigationHandler {
	return &NavigationHandler{router: router}
}

type navigateRequest struct {
	Path string `json:"path"`
}

type navigationResponse struct {
	Page    domain.Destination `json:"page"`
	Path    string             `json:"path"`
	History []navigation.Entry `json:"history,omitempty"`
}

// Current returns the page the view is showing.
//
// @Summary      Current page
// @Tags         navigation
// @Produce      json
// @Success      200   {object}  navigationResponse
// @Router       /navigation [get]
func (h *NavigationHandler) Current(c echo.Context) error {
	page := h.router.Current()
	return c.JSON(http.StatusOK, navigationResponse{
		Page:    page,
		Path:    page.Path(),
		History: h.router.History(),
	})
}

// Navigate opens a view path. Unknown paths land on the home page.
//
// @Summary      Navigate
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "View path"
// @Success      200   {object}  navigationResponse
// @Failure      400   {object}  map[string]string
// @Router       /navigation [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	page := h.router.Open(req.Path)
	return c.JSON(http.StatusOK, navigationResponse{Page: page, Path: page.Path()})
}
