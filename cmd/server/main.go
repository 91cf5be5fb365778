package main

import (
	"context"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	"auth_backend/internal/config"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	profilehandler "auth_backend/internal/feature/profile/transport/handler"
	profileusecase "auth_backend/internal/feature/profile/usecase"
	platformdb "auth_backend/internal/platform/db"
	"auth_backend/internal/platform/password"
	platformredis "auth_backend/internal/platform/redis"
	"auth_backend/internal/platform/storage"
	"auth_backend/internal/platform/token"
)

func main() {
	cfg := config.Load()

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		log.Println("[WARN] token secrets are not set. Set strong secrets in production.")
	}

	// db
	db := platformdb.Open(cfg)

	// Redis (optional; profile reads fall back to the database)
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		log.Println("[WARN] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := platformredis.NewClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Object storage (optional; registrations then ignore avatar files)
	var avatars authusecase.AvatarStorage
	if cfg.S3Bucket == "" {
		log.Println("[WARN] S3_BUCKET not set. Avatar uploads disabled.")
	} else {
		s3Storage, err := storage.NewS3AvatarStorage(context.Background(), cfg)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		avatars = s3Storage
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	profileRepo := di.NewProfileRepository(rdb, db)

	// Platform services
	hasher := password.NewHasher()
	tokens := token.NewService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens, avatars)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.IsProduction())
	profileH := profilehandler.NewProfileHandler(profileUC)

	r := router.NewRouter(authH, profileH, tokens)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
