package usecase

import (
	"context"

	"github.com/GreatJeff90/bookstore/internal/view"
)

// NavigationUsecase はログイン状態からナビを組み立てる。
// カートのバッジ数は毎回読み直す。
type NavigationUsecase struct {
	guard *GuardUsecase
	carts *CartUsecase
}

func NewNavigationUsecase(guard *GuardUsecase, carts *CartUsecase) *NavigationUsecase {
	return &NavigationUsecase{guard: guard, carts: carts}
}

func (u *NavigationUsecase) BuildNav(ctx context.Context, profileID string) (view.Nav, error) {
	user, err := u.guard.CurrentUser(ctx, profileID)
	if err != nil {
		return view.Nav{}, err
	}

	count, err := u.carts.Count(ctx, profileID)
	if err != nil {
		return view.Nav{}, err
	}

	if user.IsAuthenticated() {
		return view.MemberNav(*user, count), nil
	}
	return view.GuestNav(count), nil
}
