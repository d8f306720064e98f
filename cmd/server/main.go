package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"goldhouse_backend/internal/app/router"
	authhandler "goldhouse_backend/internal/feature/auth/transport/handler"
	authusecase "goldhouse_backend/internal/feature/auth/usecase"
	certadapters "goldhouse_backend/internal/feature/certificates/adapters"
	certhandler "goldhouse_backend/internal/feature/certificates/transport/handler"
	certusecase "goldhouse_backend/internal/feature/certificates/usecase"
	contactadapters "goldhouse_backend/internal/feature/contacts/adapters"
	contacthandler "goldhouse_backend/internal/feature/contacts/transport/handler"
	contactusecase "goldhouse_backend/internal/feature/contacts/usecase"
	productadapters "goldhouse_backend/internal/feature/products/adapters"
	producthandler "goldhouse_backend/internal/feature/products/transport/handler"
	productusecase "goldhouse_backend/internal/feature/products/usecase"
	useradapters "goldhouse_backend/internal/feature/users/adapters"
	userhandler "goldhouse_backend/internal/feature/users/transport/handler"
	userusecase "goldhouse_backend/internal/feature/users/usecase"
	"goldhouse_backend/internal/platform/cache"
	"goldhouse_backend/internal/platform/config"
	infradb "goldhouse_backend/internal/platform/db"
	jwtmw "goldhouse_backend/internal/platform/jwt"
	infraredis "goldhouse_backend/internal/platform/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Redis（未設定時はキャッシュなしで動作）
	rdb, err := infraredis.NewRedisClient(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable. Running without identity cache.")
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := useradapters.NewUserRepository(db)
	cachedUserRepo := cache.NewCachingUserRepository(rdb, cfg.Redis.IdentityTTL, userRepo, "identity")
	contactRepo := contactadapters.NewContactRepository(db)
	productRepo := productadapters.NewProductRepository(db)
	certRepo := certadapters.NewCertificateRepository(db)

	// トークン発行・検証（設定から明示的に注入）
	tokens := jwtmw.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Usecase
	userUC := userusecase.NewUserUsecase(cachedUserRepo)
	authUC := authusecase.NewAuthUsecase(cachedUserRepo, tokens)
	contactUC := contactusecase.NewContactUsecase(contactRepo)
	productUC := productusecase.NewProductUsecase(productRepo)
	certUC := certusecase.NewCertificateUsecase(certRepo)

	// 初回起動時の管理者アカウント作成
	if cfg.Seed.Password != "" {
		if err := userUC.EnsureSeedUser(context.Background(),
			cfg.Seed.FullName, cfg.Seed.PhoneNumber, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			log.Fatal(err)
		}
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	contactH := contacthandler.NewContactHandler(contactUC)
	productH := producthandler.NewProductHandler(productUC)
	certH := certhandler.NewCertificateHandler(certUC)

	// アクセスゲート：トークン検証＋リクエスト毎のアカウント再解決
	gate := jwtmw.LoginRequired(tokens, cachedUserRepo)

	// ルータ生成
	r := router.NewRouter(gate, authH, userH, contactH, productH, certH)

	if os.Getenv("GIN_MODE") == "" {
		slog.Info("running in debug mode; set GIN_MODE=release in production")
	}

	if err := r.Run(cfg.HTTP.Addr()); err != nil {
		log.Fatal(err)
	}
}
