package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/usecase"
	auth "github.com/GreatJeff90/bookstore/internal/usecase/auth_usecase"
	"github.com/GreatJeff90/bookstore/internal/view"

	"github.com/labstack/echo/v4"
)

// ログイン・ログアウトのHTTP
type SessionHandler struct {
	loginUC *auth.LoginUsecase
	guardUC *usecase.GuardUsecase
}

// DIコンストラクタ
func NewSessionHandler(loginUC *auth.LoginUsecase, guardUC *usecase.GuardUsecase) *SessionHandler {
	return &SessionHandler{
		loginUC: loginUC,
		guardUC: guardUC,
	}
}

// /api/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// /api/logout のリクエストボディ。confirm は確認画面（またはクライアントの確認ダイアログ）の結果
type logoutRequest struct {
	Confirm bool   `json:"confirm" form:"confirm"`
	Back    string `json:"back" form:"back"` // 確認画面から戻るページ
}

type logoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api", mw...)

	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
}

// POST /api/login
// フォーム送信なら303で画面へ戻す（結果はトーストで見える）
func (h *SessionHandler) login(c echo.Context) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), profileID, auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if isFormPost(c) {
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/"+model.PageLogin)
		}
		return c.Redirect(http.StatusSeeOther, "/"+model.PageIndex)
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// POST /api/logout
func (h *SessionHandler) logout(c echo.Context) error {
	profileID, ok := getProfileIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	done, err := h.guardUC.Logout(c.Request().Context(), profileID, req.Confirm)
	if err != nil {
		return writeError(c, err)
	}

	if isFormPost(c) {
		if !done {
			// ナビのフォームは確認なしで来るので確認画面を出す
			return c.Render(http.StatusOK, view.TemplateLogoutConfirm, view.NewLogoutConfirm(backTo(c, req.Back)))
		}
		// 元の画面で遅延リダイレクトを見せる
		return c.Redirect(http.StatusSeeOther, backTo(c, req.Back))
	}
	return c.JSON(http.StatusOK, logoutResponse{LoggedOut: done})
}

// 戻り先は既知のページだけ。back が無ければ同じホストのReferer
func backTo(c echo.Context, back string) string {
	if p, ok := pagePath(back); ok {
		return p
	}

	ref := c.Request().Referer()
	if ref == "" {
		return "/" + model.PageIndex
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) {
		return "/" + model.PageIndex
	}
	if p, ok := pagePath(u.Path); ok {
		return p
	}
	return "/" + model.PageIndex
}

func pagePath(p string) (string, bool) {
	if p == "/" {
		return p, true
	}
	if !strings.HasPrefix(p, "/") || !model.IsKnownPage(strings.TrimPrefix(p, "/")) {
		return "", false
	}
	return p, true
}
