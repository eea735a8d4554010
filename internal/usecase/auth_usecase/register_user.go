package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// アカウント登録の入力
type RegisterAccountInput struct {
	Email    string
	Name     string
	Password string
	Role     model.Role
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrWeakPassword       = errors.New("weak password")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterAccountUsecaseはアカウント登録の処理（開発用の初期データ投入で使う）。
type RegisterAccountUsecase struct {
	accounts repository.AccountRepository
	hasher   PasswordHasher
	clock    Clock
}

// DI
func NewRegisterAccountUsecase(
	accounts repository.AccountRepository,
	hasher PasswordHasher,
	clock Clock,
) *RegisterAccountUsecase {
	return &RegisterAccountUsecase{
		accounts: accounts,
		hasher:   hasher,
		clock:    clock,
	}
}

// 登録実行
func (u *RegisterAccountUsecase) Execute(ctx context.Context, in RegisterAccountInput) (model.Account, error) {
	// emailの形式チェック
	if !isValidEmailFormat(in.Email) {
		return model.Account{}, ErrInvalidEmailFormat
	}

	// password の長さチェック（最小12文字）
	if len(in.Password) < 12 {
		return model.Account{}, ErrPasswordTooShort
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(in.Password) {
		return model.Account{}, ErrWeakPassword
	}

	// email重複チェック
	existing, err := u.accounts.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return model.Account{}, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return model.Account{}, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Account{}, err
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	now := u.clock.Now()
	account := &model.Account{
		Email:        strings.TrimSpace(in.Email),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.accounts.Create(ctx, account); err != nil {
		return model.Account{}, err
	}

	// 返すときはハッシュを空に
	safe := *account
	safe.PasswordHash = ""
	return safe, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// パスワードのよくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":     {},
		"password123":  {},
		"123456789012": {},
		"1234567890":   {},
		"12345678":     {},
		"qwerty":       {},
		"qwertyuiop":   {},
		"letmein":      {},
		"admin":        {},
		"admin123":     {},
	}

	_, ok := weak[normalized]
	return ok
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
