package server

import (
	"github.com/GreatJeff90/bookstore/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルートを持つハンドラ一式
type Handlers struct {
	Cart    *handler.CartHandler
	UI      *handler.UIHandler
	Session *handler.SessionHandler
	Page    *handler.PageHandler
	Health  *handler.HealthHandler
}

// healthz 以外はプロフィールcookieが必要
func RegisterRoutes(e *echo.Echo, h Handlers, profile echo.MiddlewareFunc) {
	h.Health.RegisterRoutes(e)

	h.Cart.RegisterRoutes(e, profile)
	h.UI.RegisterRoutes(e, profile)
	h.Session.RegisterRoutes(e, profile)
	h.Page.RegisterRoutes(e, profile)
}
