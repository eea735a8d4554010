package repository

import (
	"context"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
)

type CartRepository interface {
	// 無い・壊れている場合は空カート（エラーにしない）
	Load(ctx context.Context, profileID string) (model.Cart, error)
	Save(ctx context.Context, profileID string, cart model.Cart) error
	// キーごと消す
	Clear(ctx context.Context, profileID string) error
}
