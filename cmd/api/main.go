package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GreatJeff90/bookstore/internal/config"
	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/handler"
	"github.com/GreatJeff90/bookstore/internal/infra/db"
	infraRepo "github.com/GreatJeff90/bookstore/internal/infra/repository"
	"github.com/GreatJeff90/bookstore/internal/infra/storage"
	"github.com/GreatJeff90/bookstore/internal/repository"
	"github.com/GreatJeff90/bookstore/internal/scheduler"
	"github.com/GreatJeff90/bookstore/internal/server"
	"github.com/GreatJeff90/bookstore/internal/usecase"
	auth "github.com/GreatJeff90/bookstore/internal/usecase/auth_usecase"
	"github.com/GreatJeff90/bookstore/internal/validator"
	"github.com/GreatJeff90/bookstore/internal/view"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 開発用アカウント（GO_ENV=dev の時だけ入れる）
var devAccounts = []auth.RegisterAccountInput{
	{Email: "admin@bookstore.local", Name: "Admin", Password: "bookstore-admin-2026", Role: model.RoleAdmin},
	{Email: "reader@bookstore.local", Name: "Reader", Password: "bookstore-reader-2026", Role: model.RoleUser},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//ストレージ（ドライバで切り替え）
	store, accounts, closer, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	logger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	if cfg.IsDev() {
		seedAccounts(ctx, accounts, logger)
	}

	//Repository
	carts := infraRepo.NewCartStorageRepository(store)
	users := infraRepo.NewCurrentUserStorageRepository(store)

	//タイマー（トースト消去・遅延リダイレクト）
	sched := scheduler.New()
	toasts := usecase.NewToastUsecase(sched, cfg.UI.ToastTTL, time.Now)
	router := usecase.NewNavigator(sched, time.Now)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(carts, toasts, logger.Named("cart"))
	guardUC := usecase.NewGuardUsecase(users, toasts, router, usecase.GuardConfig{
		RedirectDelay: cfg.UI.GuardRedirectDelay,
		LogoutDelay:   cfg.UI.LogoutRedirectDelay,
	}, logger.Named("guard"))
	navUC := usecase.NewNavigationUsecase(guardUC, cartUC)
	pageUC := usecase.NewPageUsecase(navUC, guardUC, cartUC, toasts, router)
	loginUC := auth.NewLoginUsecase(
		accounts, users,
		auth.NewBcryptPasswordVerifier(), validator.NewLoginValidator(),
		toasts, router, &realClock{}, logger.Named("login"),
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	//Handler生成
	h := server.Handlers{
		Cart:    handler.NewCartHandler(cartUC),
		UI:      handler.NewUIHandler(navUC, toasts),
		Session: handler.NewSessionHandler(loginUC, guardUC),
		Page:    handler.NewPageHandler(pageUC),
		Health:  handler.NewHealthHandler(store),
	}

	//Server起動
	e := server.New(cfg, logger, renderer, h, &uuidGenerator{})
	return server.Start(ctx, e, cfg.Addr(), sched, logger)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openStorage はドライバに応じたストレージとアカウント置き場を返す。
// アカウントをDBに置けるのはpostgresだけ（他はメモリ）。
func openStorage(ctx context.Context, cfg config.StorageConfig) (repository.Storage, repository.AccountRepository, io.Closer, error) {
	switch cfg.Driver {
	case config.StorageSQLite:
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return storage.NewSQLiteStore(sqlDB), infraRepo.NewAccountMemoryRepository(), sqlDB, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return storage.NewRedisStore(client, cfg.RedisPrefix), infraRepo.NewAccountMemoryRepository(), client, nil

	case config.StoragePostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		return storage.NewGormStore(gormDB), infraRepo.NewAccountGormRepository(gormDB), sqlDB, nil

	default:
		return storage.NewMemoryStore(), infraRepo.NewAccountMemoryRepository(), nopCloser{}, nil
	}
}

func seedAccounts(ctx context.Context, accounts repository.AccountRepository, logger *zap.Logger) {
	registerUC := auth.NewRegisterAccountUsecase(accounts, auth.NewBcryptPasswordHasher(12), &realClock{})

	for _, in := range devAccounts {
		_, err := registerUC.Execute(ctx, in)
		switch {
		case err == nil:
			logger.Info("seeded account", zap.String("email", in.Email), zap.String("role", string(in.Role)))
		case errors.Is(err, auth.ErrEmailAlreadyExists):
		default:
			logger.Warn("seed account failed", zap.String("email", in.Email), zap.Error(err))
		}
	}
}
