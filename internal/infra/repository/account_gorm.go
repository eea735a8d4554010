package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	domainrepo "github.com/GreatJeff90/bookstore/internal/repository"

	"gorm.io/gorm"
)

type accountGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewAccountGormRepository(db *gorm.DB) domainrepo.AccountRepository {
	return &accountGormRepository{db: db}
}

// emailでアカウントを1件取得（大文字小文字は区別しない）
func (r *accountGormRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account

	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountGormRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// アカウントを更新。無いidは ErrNotFound（Saveのように作らない）
func (r *accountGormRepository) Update(ctx context.Context, account *model.Account) error {
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", account.ID).
		Select("*").Omit("id", "created_at").
		Updates(account)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
