package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	repo "github.com/GreatJeff90/bookstore/internal/repository"
)

// CartStorageRepository は cart キーにJSON配列で保存する。
type CartStorageRepository struct {
	store repo.Storage
}

// DI
func NewCartStorageRepository(store repo.Storage) *CartStorageRepository {
	return &CartStorageRepository{store: store}
}

// 無い・JSONが壊れている場合は空カート
func (r *CartStorageRepository) Load(ctx context.Context, profileID string) (model.Cart, error) {
	raw, err := r.store.GetItem(ctx, profileID, repo.KeyCart)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, nil
	}
	if err != nil {
		return model.Cart{}, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return model.Cart{}, nil
	}

	cart := model.Cart{Lines: lines}
	cart.Normalize()
	return cart, nil
}

// 配列のまま保存（ブラウザ版と同じ形）
func (r *CartStorageRepository) Save(ctx context.Context, profileID string, cart model.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return r.store.SetItem(ctx, profileID, repo.KeyCart, string(b))
}

func (r *CartStorageRepository) Clear(ctx context.Context, profileID string) error {
	return r.store.RemoveItem(ctx, profileID, repo.KeyCart)
}

var _ repo.CartRepository = (*CartStorageRepository)(nil)
