package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	repo "github.com/GreatJeff90/bookstore/internal/repository"

	"go.uber.org/zap"
)

type GuardConfig struct {
	RedirectDelay time.Duration // ガードで弾いた時のログイン画面への遅延
	LogoutDelay   time.Duration // ログアウト後のトップへの遅延
}

// GuardUsecase はログイン・管理者チェックとログアウト
type GuardUsecase struct {
	users    repo.CurrentUserRepository
	notifier Notifier
	nav      Redirector
	cfg      GuardConfig
	logger   *zap.Logger
}

func NewGuardUsecase(
	users repo.CurrentUserRepository,
	notifier Notifier,
	nav Redirector,
	cfg GuardConfig,
	logger *zap.Logger,
) *GuardUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardUsecase{
		users:    users,
		notifier: notifier,
		nav:      nav,
		cfg:      cfg,
		logger:   logger,
	}
}

// CurrentUser は無い・壊れている時 nil（ログアウト扱い）
func (u *GuardUsecase) CurrentUser(ctx context.Context, profileID string) (*model.CurrentUser, error) {
	if profileID == "" {
		return nil, nil
	}

	user, err := u.users.Find(ctx, profileID)
	if err != nil {
		u.logger.Error("load current user failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return user, nil
}

// RequireAuth は未ログインならエラートーストを出し、ログイン画面へのリダイレクトを予約して false。
func (u *GuardUsecase) RequireAuth(ctx context.Context, profileID string) (bool, error) {
	user, err := u.CurrentUser(ctx, profileID)
	if err != nil {
		return false, err
	}
	if user.IsAuthenticated() {
		return true, nil
	}

	u.reject(profileID, "Please login to access this page")
	return false, nil
}

// RequireAdmin はさらに role=admin を確認
func (u *GuardUsecase) RequireAdmin(ctx context.Context, profileID string) (bool, error) {
	user, err := u.CurrentUser(ctx, profileID)
	if err != nil {
		return false, err
	}
	if user.IsAdmin() {
		return true, nil
	}

	u.reject(profileID, "Admin access required")
	return false, nil
}

func (u *GuardUsecase) reject(profileID string, message string) {
	u.notifier.Show(profileID, message, model.SeverityError)
	u.nav.ScheduleRedirect(profileID, model.PageLogin, u.cfg.RedirectDelay)
}

// Logout は確認済みの時だけ currentUser を消してトップへのリダイレクトを予約する。
// 未確認なら何もしない（false）。
func (u *GuardUsecase) Logout(ctx context.Context, profileID string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if profileID == "" {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.users.Delete(ctx, profileID); err != nil {
		u.logger.Error("logout failed", zap.String("profile_id", profileID), zap.Error(err))
		return false, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	u.notifier.Show(profileID, "Logged out successfully!", model.SeveritySuccess)
	u.nav.ScheduleRedirect(profileID, model.PageIndex, u.cfg.LogoutDelay)
	return true, nil
}
