package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GreatJeff90/bookstore/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

// ログアウト状態 => ログインリンク、バッジ非表示
func TestRenderNav_Guest(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.RenderNav(&buf, GuestNav(0)))

	out := buf.String()
	assert.Contains(t, out, `href="login.html"`)
	assert.Contains(t, out, "Login")
	assert.NotContains(t, out, "My Profile")
	assert.Contains(t, out, `style="display: none"`)
}

func TestRenderNav_Member(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	nav := MemberNav(model.CurrentUser{Email: "paul@arrakis.example", LoggedIn: true}, 3)
	require.NoError(t, r.RenderNav(&buf, nav))

	out := buf.String()
	assert.Contains(t, out, "paul")
	assert.Contains(t, out, `href="profile.html"`)
	assert.Contains(t, out, `href="order-tracking.html"`)
	assert.Contains(t, out, `action="/api/logout"`)
	assert.Contains(t, out, "Logout")
	assert.NotContains(t, out, `href="login.html"`)
	assert.Contains(t, out, `style="display: flex">3</span>`)
}

// 名前はエスケープされる
func TestRenderNav_EscapesLabel(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	nav := MemberNav(model.CurrentUser{Name: "<script>alert(1)</script>", LoggedIn: true}, 0)
	require.NoError(t, r.RenderNav(&buf, nav))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderToast(t *testing.T) {
	r := newTestRenderer(t)

	var empty bytes.Buffer
	require.NoError(t, r.RenderToast(&empty, nil))
	assert.Empty(t, empty.String())

	var buf bytes.Buffer
	require.NoError(t, r.RenderToast(&buf, ToastFrom(model.Toast{Message: "Dune added to cart!", Severity: model.SeveritySuccess})))
	out := buf.String()
	assert.Contains(t, out, "toast-message")
	assert.Contains(t, out, "bg-green-500")
	assert.Contains(t, out, "fa-check-circle")
	assert.Contains(t, out, "Dune added to cart!")
}

func TestRenderPage_WithCartAndRedirect(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	err := r.RenderPage(&buf, Page{
		Path: "/cart.html",
		Nav:  GuestNav(2),
		Cart: &CartSummary{
			Lines: []model.CartLine{{ID: "b1", Title: "Dune", Price: 15.99, Quantity: 2}},
			Count: 2,
			Total: 31.98,
		},
		Redirect: &Redirect{To: "login.html", Seconds: 1.5},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `content="1.5;url=login.html"`)
	assert.Contains(t, out, `data-id="b1"`)
	assert.Contains(t, out, "$31.98")
	assert.Contains(t, out, `data-count="2"`)
}

// ガードで止まったらカートは出さない
func TestRenderPage_Blocked(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	err := r.RenderPage(&buf, Page{
		Path:    "/profile.html",
		Nav:     GuestNav(0),
		Blocked: true,
		Toast:   ToastFrom(model.Toast{Message: "Please login to access this page", Severity: model.SeverityError}),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "guard-blocked")
	assert.NotContains(t, out, `id="cart"`)
	assert.Contains(t, out, "bg-red-500")
}

// echo.Renderer として使える
func TestRenderer_Echo(t *testing.T) {
	e := echo.New()
	e.Renderer = newTestRenderer(t)
	e.GET("/nav", func(c echo.Context) error {
		return c.Render(http.StatusOK, TemplateNav, GuestNav(0))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nav", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "authSection")
}

// ナビのログアウトは確認画面を通す（confirmを直接送らない）
func TestRenderNav_LogoutFormHasNoConfirm(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.RenderNav(&buf, MemberNav(model.CurrentUser{Name: "Jane", LoggedIn: true}, 0)))

	assert.NotContains(t, buf.String(), `name="confirm"`)
}

func TestRenderLogoutConfirm(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, TemplateLogoutConfirm, NewLogoutConfirm("/cart.html"), nil))

	out := buf.String()
	assert.Contains(t, out, "Are you sure you want to logout?")
	assert.Contains(t, out, `action="/api/logout"`)
	assert.Contains(t, out, `name="confirm" value="true"`)
	assert.Contains(t, out, `name="back" value="/cart.html"`)
	assert.Contains(t, out, `href="/cart.html"`)
}
