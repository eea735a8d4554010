package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/GreatJeff90/bookstore/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxProfileIDKey = "profile_id" // string
)

// IDGenerator はプロフィールIDを作る約束
type IDGenerator interface {
	NewID() string
}

// プロフィールcookieのミドルウェア。
// cookieはHS256で署名したトークン（sub=profile_id）。無い・不正なら新しいIDを発行する。
func ProfileCookie(cfg config.Config, idGen IDGenerator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID := ""
			if ck, err := c.Cookie(cfg.ProfileCookie); err == nil && ck.Value != "" {
				if id, err := ParseProfileToken(cfg.JWTSecret, ck.Value); err == nil {
					profileID = id
				}
			}

			if profileID == "" {
				profileID = idGen.NewID()

				signed, err := IssueProfileToken(cfg.JWTSecret, profileID, time.Now(), cfg.ProfileTTL)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
				}

				c.SetCookie(&http.Cookie{
					Name:     cfg.ProfileCookie,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(cfg.ProfileTTL.Seconds()),
				})
			}

			//contextへ保存
			c.Set(CtxProfileIDKey, profileID)
			return next(c)
		}
	}
}

// IssueProfileToken はプロフィールIDを署名する
func IssueProfileToken(secret string, profileID string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": profileID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ParseProfileToken は署名・期限・アルゴリズムを検証してIDを返す
func ParseProfileToken(secret string, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid profile token")
	}

	//claimsを取り出す
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sub, err := parseString(claims["sub"])
	if err != nil || sub == "" {
		return "", errors.New("invalid sub")
	}
	return sub, nil
}

// ProfileID はハンドラ用
func ProfileID(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxProfileIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
