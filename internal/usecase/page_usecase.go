package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/view"
)

// PageUsecase はページ表示時の初期化（ナビ→ガード→カート）
type PageUsecase struct {
	nav    *NavigationUsecase
	guard  *GuardUsecase
	carts  *CartUsecase
	toasts *ToastUsecase
	router *Navigator
}

func NewPageUsecase(
	nav *NavigationUsecase,
	guard *GuardUsecase,
	carts *CartUsecase,
	toasts *ToastUsecase,
	router *Navigator,
) *PageUsecase {
	return &PageUsecase{
		nav:    nav,
		guard:  guard,
		carts:  carts,
		toasts: toasts,
		router: router,
	}
}

// PageResult は RedirectNow があれば即リダイレクト、無ければ Page を描く
type PageResult struct {
	RedirectNow string
	Page        view.Page
}

// Bootstrap はページ1枚分の状態を作る
func (u *PageUsecase) Bootstrap(ctx context.Context, profileID string, path string, query url.Values) (PageResult, error) {
	// 期限の過ぎたリダイレクトが残っていれば先に従う
	if to, ok := u.router.Take(profileID); ok && !strings.Contains(path, to) {
		return PageResult{RedirectNow: to}, nil
	}

	nav, err := u.nav.BuildNav(ctx, profileID)
	if err != nil {
		return PageResult{}, err
	}

	page := view.Page{
		Path:  path,
		Nav:   nav,
		Query: flattenQuery(query),
	}

	allowed := true
	switch model.RequiredAccess(path) {
	case model.AccessAuth:
		allowed, err = u.guard.RequireAuth(ctx, profileID)
	case model.AccessAdmin:
		allowed, err = u.guard.RequireAdmin(ctx, profileID)
	}
	if err != nil {
		return PageResult{}, err
	}

	if allowed {
		cart, err := u.carts.GetCart(ctx, profileID)
		if err != nil {
			return PageResult{}, err
		}
		page.Cart = &view.CartSummary{Lines: cart.Items, Count: cart.Count, Total: cart.Total}
	} else {
		page.Blocked = true
	}

	if t, ok := u.toasts.Current(profileID); ok {
		page.Toast = view.ToastFrom(t)
	}
	if r, remaining, ok := u.router.Pending(profileID); ok {
		if strings.Contains(path, r.To) {
			// もう着いている
			u.router.CancelRedirect(profileID)
		} else {
			page.Redirect = &view.Redirect{To: r.To, Seconds: remaining.Seconds()}
		}
	}

	return PageResult{Page: page}, nil
}

// 同じキーは最後の値
func flattenQuery(q url.Values) map[string]string {
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[len(vs)-1]
		}
	}
	return out
}
