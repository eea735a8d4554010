package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ログイン中ユーザー（ストレージの currentUser キー）
// このサービスは読むのと、ログアウトで消すだけ。書き込みはログイン処理。
type CurrentUser struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	LoggedIn bool   `json:"loggedIn"`
	Role     Role   `json:"role,omitempty"`
}

// Label はナビに出す表示名です。nameが無ければemailの@より前。
func (u CurrentUser) Label() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

func (u *CurrentUser) IsAuthenticated() bool {
	return u != nil && u.LoggedIn
}

func (u *CurrentUser) IsAdmin() bool {
	return u.IsAuthenticated() && u.Role == RoleAdmin
}

// ログイン用のアカウント
type Account struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(255)"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
