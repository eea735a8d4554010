package repository

import (
	"context"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
)

// currentUser キーの読み書き
type CurrentUserRepository interface {
	// 無い・壊れている場合は (nil, nil) = ログアウト扱い
	Find(ctx context.Context, profileID string) (*model.CurrentUser, error)
	Save(ctx context.Context, profileID string, user model.CurrentUser) error
	Delete(ctx context.Context, profileID string) error
}

// ログイン用アカウントの取得
type AccountRepository interface {
	// 無ければ ErrNotFound
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) error
	// 最後のログイン時刻など
	Update(ctx context.Context, account *model.Account) error
}
