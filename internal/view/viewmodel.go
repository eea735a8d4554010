package view

import (
	"github.com/GreatJeff90/bookstore/internal/domain/model"
)

type Link struct {
	Href  string
	Label string
	Icon  string
}

// Nav はナビの状態。LoggedIn で出し分ける。
type Nav struct {
	LoggedIn  bool
	Label     string
	Links     []Link // プロフィールメニュー
	LogoutURL string
	LoginURL  string
	CartCount int
}

// 0件ならバッジを隠す
func (n Nav) ShowBadge() bool {
	return n.CartCount > 0
}

// GuestNav はログインリンクだけのナビ
func GuestNav(cartCount int) Nav {
	return Nav{LoginURL: model.PageLogin, CartCount: cartCount}
}

// MemberNav はプロフィールメニュー付きのナビ
func MemberNav(user model.CurrentUser, cartCount int) Nav {
	return Nav{
		LoggedIn: true,
		Label:    user.Label(),
		Links: []Link{
			{Href: model.PageProfile, Label: "My Profile", Icon: "fa-user-circle"},
			{Href: model.PageOrderTracking, Label: "Order History", Icon: "fa-history"},
		},
		LogoutURL: "/api/logout",
		CartCount: cartCount,
	}
}

type Toast struct {
	Message  string
	Severity model.Severity
	Color    string
	Icon     string
}

func ToastFrom(t model.Toast) *Toast {
	st := t.Severity.Style()
	return &Toast{Message: t.Message, Severity: t.Severity, Color: st.Color, Icon: st.Icon}
}

// 遅延リダイレクト
type Redirect struct {
	To      string
	Seconds float64
}

type CartSummary struct {
	Lines []model.CartLine
	Count int
	Total float64
}

// Page はページ枠に渡すもの
type Page struct {
	Path     string
	Nav      Nav
	Cart     *CartSummary // ガードで止まった時は nil
	Toast    *Toast
	Redirect *Redirect
	Blocked  bool
	Query    map[string]string
}

// LogoutConfirm はフォームからのログアウトの確認画面
type LogoutConfirm struct {
	Message   string
	ActionURL string
	BackURL   string
}

func NewLogoutConfirm(backURL string) LogoutConfirm {
	return LogoutConfirm{
		Message:   "Are you sure you want to logout?",
		ActionURL: "/api/logout",
		BackURL:   backURL,
	}
}
