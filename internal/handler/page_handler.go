package handler

import (
	"net/http"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/usecase"
	"github.com/GreatJeff90/bookstore/internal/view"

	"github.com/labstack/echo/v4"
)

// ページ枠（ナビ・ガード・カート・トースト・遅延リダイレクト）
type PageHandler struct {
	uc *usecase.PageUsecase
}

func NewPageHandler(uc *usecase.PageUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.GET("/", h.index, mw...)
	e.GET("/:page", h.page, mw...)
}

func (h *PageHandler) index(c echo.Context) error {
	return h.render(c, model.PageIndex)
}

func (h *PageHandler) page(c echo.Context) error {
	name := c.Param("page")
	if !model.IsKnownPage(name) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return h.render(c, name)
}

func (h *PageHandler) render(c echo.Context, name string) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	res, err := h.uc.Bootstrap(c.Request().Context(), profileID, "/"+name, c.QueryParams())
	if err != nil {
		return writeError(c, err)
	}
	if res.RedirectNow != "" {
		return c.Redirect(http.StatusSeeOther, "/"+res.RedirectNow)
	}

	return c.Render(http.StatusOK, view.TemplatePage, res.Page)
}
