package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	repo "github.com/GreatJeff90/bookstore/internal/repository"
)

// CurrentUserStorageRepository は currentUser キーを読む。
type CurrentUserStorageRepository struct {
	store repo.Storage
}

// DI
func NewCurrentUserStorageRepository(store repo.Storage) *CurrentUserStorageRepository {
	return &CurrentUserStorageRepository{store: store}
}

// 無い・壊れている => (nil, nil) でログアウト扱い
func (r *CurrentUserStorageRepository) Find(ctx context.Context, profileID string) (*model.CurrentUser, error) {
	raw, err := r.store.GetItem(ctx, profileID, repo.KeyCurrentUser)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// JSONの "null" も nil になる
	var u *model.CurrentUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return u, nil
}

func (r *CurrentUserStorageRepository) Save(ctx context.Context, profileID string, user model.CurrentUser) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal current user: %w", err)
	}
	return r.store.SetItem(ctx, profileID, repo.KeyCurrentUser, string(b))
}

func (r *CurrentUserStorageRepository) Delete(ctx context.Context, profileID string) error {
	return r.store.RemoveItem(ctx, profileID, repo.KeyCurrentUser)
}

var _ repo.CurrentUserRepository = (*CurrentUserStorageRepository)(nil)
