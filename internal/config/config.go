package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ストレージのドライバ
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// 開発用のシークレット（GO_ENV=dev の時だけ使う）
const devSecret = "dev_secret_change_me"

// Configはアプリ全体の設定
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"` // サーバーポート
	GoEnv string `env:"GO_ENV"`                 // dev/prod（必須）

	JWTSecret     string        `env:"JWT_SECRET"`                                  // プロフィールcookieの署名
	ProfileCookie string        `env:"PROFILE_COOKIE" envDefault:"bookstore_profile"` // cookie名
	ProfileTTL    time.Duration `env:"PROFILE_TTL" envDefault:"720h"`               // cookieの有効期限
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	Storage StorageConfig
	UI      UIConfig
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"` // memory/sqlite/redis/postgres

	DatabaseURL      string `env:"DATABASE_URL"` // あれば最優先
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"bookstore"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"bookstore.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"bookstore:"`
}

// トースト・リダイレクトの待ち時間
type UIConfig struct {
	ToastTTL            time.Duration `env:"TOAST_TTL" envDefault:"4s"`
	GuardRedirectDelay  time.Duration `env:"GUARD_REDIRECT_DELAY" envDefault:"1500ms"`
	LogoutRedirectDelay time.Duration `env:"LOGOUT_REDIRECT_DELAY" envDefault:"1s"`
}

// Loadは .env と環境変数から読む
func Load() (Config, error) {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.GoEnv == "dev" || c.GoEnv == "development"
}

// Addr は ":8080" の形にする
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DSN はpostgres接続文字列
func (s StorageConfig) DSN() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.PostgresHost, s.PostgresPort, s.PostgresUser, s.PostgresPassword, s.PostgresDB, s.PostgresSSLMode,
	)
}

// Sanitize は値の補正
func (c *Config) Sanitize() {
	c.GoEnv = strings.ToLower(strings.TrimSpace(c.GoEnv))
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.JWTSecret == "" && c.IsDev() {
		c.JWTSecret = devSecret
	}
	if c.ProfileTTL <= 0 {
		c.ProfileTTL = 30 * 24 * time.Hour
	}
	if c.UI.ToastTTL <= 0 {
		c.UI.ToastTTL = 4 * time.Second
	}
	if c.UI.GuardRedirectDelay < 0 {
		c.UI.GuardRedirectDelay = 0
	}
	if c.UI.LogoutRedirectDelay < 0 {
		c.UI.LogoutRedirectDelay = 0
	}
}

// 必須チェック
func (c Config) Validate() error {
	// 未設定のままdevにはしない
	if c.GoEnv == "" {
		return errors.New("GO_ENV is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.ProfileCookie == "" {
		return errors.New("PROFILE_COOKIE is required")
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of memory/sqlite/redis/postgres: %q", c.Storage.Driver)
	}
	return nil
}
