package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

var emailLike = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type LoginValidator struct{}

func NewLoginValidator() *LoginValidator {
	return &LoginValidator{}
}

// ログインの入力を検証
func (v *LoginValidator) ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !IsEmailLike(email) {
		return ErrInvalidInput
	}

	return nil
}

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailLike.MatchString(s)
}
