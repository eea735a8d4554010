package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/repository"
	"github.com/GreatJeff90/bookstore/internal/usecase"

	"go.uber.org/zap"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	User model.CurrentUser `json:"user"`
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 入力チェックの約束
type LoginValidator interface {
	ValidateLogin(email string, password string) error
}

// LoginUsecase はアカウントを確認して currentUser を書き込む。
type LoginUsecase struct {
	accounts  repository.AccountRepository
	users     repository.CurrentUserRepository
	verifier  PasswordVerifier
	validator LoginValidator
	notifier  usecase.Notifier
	nav       usecase.Redirector
	clock     Clock
	logger    *zap.Logger
}

func NewLoginUsecase(
	accounts repository.AccountRepository,
	users repository.CurrentUserRepository,
	verifier PasswordVerifier,
	validator LoginValidator,
	notifier usecase.Notifier,
	nav usecase.Redirector,
	clock Clock,
	logger *zap.Logger,
) *LoginUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginUsecase{
		accounts:  accounts,
		users:     users,
		verifier:  verifier,
		validator: validator,
		notifier:  notifier,
		nav:       nav,
		clock:     clock,
		logger:    logger,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, profileID string, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	if profileID == "" {
		return out, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.validator.ValidateLogin(in.Email, in.Password); err != nil {
		return out, usecase.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	//emailでアカウント取得
	account, err := u.accounts.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return out, u.fail(profileID)
	}
	if err != nil {
		u.logger.Error("find account failed", zap.Error(err))
		return out, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//パスワード照合
	if !u.verifier.Verify(in.Password, account.PasswordHash) {
		return out, u.fail(profileID)
	}

	//停止アカウントはログイン不可
	if !account.IsActive {
		u.notifier.Show(profileID, "This account is disabled", model.SeverityError)
		return out, usecase.NewHTTPError(http.StatusForbidden, "account disabled")
	}

	user := model.CurrentUser{
		Name:     account.Name,
		Email:    account.Email,
		LoggedIn: true,
		Role:     account.Role,
	}
	if err := u.users.Save(ctx, profileID, user); err != nil {
		u.logger.Error("save current user failed", zap.String("profile_id", profileID), zap.Error(err))
		return out, usecase.NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	//最終ログイン時刻更新（失敗してもログインは成功）
	now := u.clock.Now()
	account.LastLoginAt = &now
	if err := u.accounts.Update(ctx, account); err != nil {
		u.logger.Warn("update last login failed", zap.Int64("account_id", account.ID), zap.Error(err))
	}

	// ガードが予約したログイン画面へのリダイレクトは不要になる
	u.nav.CancelRedirect(profileID)
	u.notifier.Show(profileID, fmt.Sprintf("Welcome back, %s!", user.Label()), model.SeveritySuccess)

	out.User = user
	return out, nil
}

func (u *LoginUsecase) fail(profileID string) error {
	u.notifier.Show(profileID, "Invalid email or password", model.SeverityError)
	return usecase.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
}
