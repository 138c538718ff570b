// Command create-user provisions a dashboard account. The password is read
// from the CREATE_USER_PASSWORD environment variable when --password is not
// given, so it can stay out of shell history.
//
// Flags:
//
//	--email     login email (required)
//	--name      display name shown as the reviewer
//	--password  initial password, 8-72 bytes
//	--role      reviewer or admin (default: reviewer)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/seo-review-backend/internal/app"
	"github.com/heartmarshall/seo-review-backend/internal/auth"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/domain"
	authsvc "github.com/heartmarshall/seo-review-backend/internal/service/auth"
)

func main() {
	emailFlag := flag.String("email", "", "login email")
	nameFlag := flag.String("name", "", "display name")
	passwordFlag := flag.String("password", "", "initial password (default: $CREATE_USER_PASSWORD)")
	roleFlag := flag.String("role", "", "reviewer or admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	password := *passwordFlag
	if password == "" {
		password = os.Getenv("CREATE_USER_PASSWORD")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	svc := authsvc.NewService(logger, user.New(pool), jwtManager, cfg.Auth)

	u, err := svc.CreateUser(ctx, authsvc.CreateUserInput{
		Email:    *emailFlag,
		Name:     *nameFlag,
		Password: password,
		Role:     *roleFlag,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			for _, fe := range ve.Errors {
				logger.Error("invalid input", slog.String("field", fe.Field), slog.String("message", fe.Message))
			}
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.Error("email already registered", slog.String("email", *emailFlag))
		default:
			logger.Error("create user failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	logger.Info("user ready",
		slog.String("id", u.ID.String()),
		slog.String("email", u.Email),
		slog.String("role", u.Role.String()))
}
