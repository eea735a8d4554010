package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	domainrepo "github.com/GreatJeff90/bookstore/internal/repository"
)

// postgres以外のドライバで使うアカウント置き場
type accountMemoryRepository struct {
	mu     sync.RWMutex
	byMail map[string]model.Account
	nextID int64
}

func NewAccountMemoryRepository() domainrepo.AccountRepository {
	return &accountMemoryRepository{byMail: map[string]model.Account{}, nextID: 1}
}

func mailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *accountMemoryRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byMail[mailKey(email)]
	if !ok {
		return nil, domainrepo.ErrNotFound
	}
	return &a, nil
}

func (r *accountMemoryRepository) Create(ctx context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	account.ID = r.nextID
	account.CreatedAt = now
	account.UpdatedAt = now
	r.nextID++

	r.byMail[mailKey(account.Email)] = *account
	return nil
}

func (r *accountMemoryRepository) Update(ctx context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := mailKey(account.Email)
	if _, ok := r.byMail[key]; !ok {
		return domainrepo.ErrNotFound
	}
	account.UpdatedAt = time.Now()
	r.byMail[key] = *account
	return nil
}
