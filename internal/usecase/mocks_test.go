package usecase

import (
	"context"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	repo "github.com/GreatJeff90/bookstore/internal/repository"
	"github.com/GreatJeff90/bookstore/internal/scheduler"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load(ctx context.Context, profileID string) (model.Cart, error) {
	args := m.Called(ctx, profileID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, profileID string, cart model.Cart) error {
	args := m.Called(ctx, profileID, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

var _ repo.CartRepository = (*MockCartRepository)(nil)

type MockCurrentUserRepository struct {
	mock.Mock
}

func (m *MockCurrentUserRepository) Find(ctx context.Context, profileID string) (*model.CurrentUser, error) {
	args := m.Called(ctx, profileID)
	u, _ := args.Get(0).(*model.CurrentUser)
	return u, args.Error(1)
}

func (m *MockCurrentUserRepository) Save(ctx context.Context, profileID string, user model.CurrentUser) error {
	args := m.Called(ctx, profileID, user)
	return args.Error(0)
}

func (m *MockCurrentUserRepository) Delete(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

var _ repo.CurrentUserRepository = (*MockCurrentUserRepository)(nil)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Show(profileID string, message string, severity model.Severity) model.Toast {
	m.Called(profileID, message, severity)
	return model.Toast{Message: message, Severity: severity}
}

var _ Notifier = (*MockNotifier)(nil)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// 手で進める時計付きのscheduler
func newTestScheduler() (*scheduler.Scheduler, *scheduler.FakeTimers) {
	ft := scheduler.NewFakeTimers(testEpoch)
	return scheduler.New(ft.Options()...), ft
}
