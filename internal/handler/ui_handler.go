package handler

import (
	"net/http"
	"time"

	"github.com/GreatJeff90/bookstore/internal/usecase"
	"github.com/GreatJeff90/bookstore/internal/view"

	"github.com/labstack/echo/v4"
)

// ナビとトーストの断片。Accept: application/json ならJSON
type UIHandler struct {
	navUC   *usecase.NavigationUsecase
	toastUC *usecase.ToastUsecase
}

func NewUIHandler(navUC *usecase.NavigationUsecase, toastUC *usecase.ToastUsecase) *UIHandler {
	return &UIHandler{navUC: navUC, toastUC: toastUC}
}

type linkResponse struct {
	Href  string `json:"href"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type navResponse struct {
	LoggedIn  bool           `json:"logged_in"`
	Label     string         `json:"label,omitempty"`
	Links     []linkResponse `json:"links"`
	LogoutURL string         `json:"logout_url,omitempty"`
	LoginURL  string         `json:"login_url,omitempty"`
	CartCount int            `json:"cart_count"`
	ShowBadge bool           `json:"show_badge"`
}

type toastResponse struct {
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Color    string    `json:"color"`
	Icon     string    `json:"icon"`
	ShownAt  time.Time `json:"shown_at"`
}

func (h *UIHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api", mw...)

	g.GET("/nav", h.nav)
	g.GET("/toast", h.toast)
	g.DELETE("/toast", h.dismissToast)
}

func (h *UIHandler) nav(c echo.Context) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	nav, err := h.navUC.BuildNav(c.Request().Context(), profileID)
	if err != nil {
		return writeError(c, err)
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, toNavResponse(nav))
	}
	return c.Render(http.StatusOK, view.TemplateNav, nav)
}

// 出ていなければ204
func (h *UIHandler) toast(c echo.Context) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	t, ok := h.toastUC.Current(profileID)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	v := view.ToastFrom(t)
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, toastResponse{
			Message:  v.Message,
			Severity: string(v.Severity),
			Color:    v.Color,
			Icon:     v.Icon,
			ShownAt:  t.ShownAt,
		})
	}
	return c.Render(http.StatusOK, view.TemplateToast, v)
}

func (h *UIHandler) dismissToast(c echo.Context) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	h.toastUC.Dismiss(profileID)
	return c.NoContent(http.StatusNoContent)
}

func toNavResponse(nav view.Nav) navResponse {
	links := make([]linkResponse, 0, len(nav.Links))
	for _, l := range nav.Links {
		links = append(links, linkResponse{Href: l.Href, Label: l.Label, Icon: l.Icon})
	}
	return navResponse{
		LoggedIn:  nav.LoggedIn,
		Label:     nav.Label,
		Links:     links,
		LogoutURL: nav.LogoutURL,
		LoginURL:  nav.LoginURL,
		CartCount: nav.CartCount,
		ShowBadge: nav.ShowBadge(),
	}
}
