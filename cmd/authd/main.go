package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/raimonvibe/email-authentication-tutorial/internal/config"
	"github.com/raimonvibe/email-authentication-tutorial/internal/handler"
	"github.com/raimonvibe/email-authentication-tutorial/internal/middleware"
	"github.com/raimonvibe/email-authentication-tutorial/internal/service"
	"github.com/raimonvibe/email-authentication-tutorial/internal/store"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "authd",
		Short: "email authentication server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the authentication server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			_ = godotenv.Load()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			if cfg.UsingFallbackSecret {
				logutil.GetLogger(context.Background()).Warn("jwt_secret not configured, using the insecure development fallback; do not run this in production")
			}
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.Bool("reveal_codes", cfg.RevealCodes),
		zap.Bool("mail_configured", cfg.Mail.Host != ""),
	)

	accounts := store.NewAccountStore()

	var sender service.EmailSender
	if cfg.Mail.Host != "" {
		sender = service.NewSMTPSender(cfg.Mail)
	}
	authService := service.NewAuthService(accounts, service.Options{
		Sender:      sender,
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenTTL:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		SendTimeout: time.Duration(cfg.Mail.TimeoutSeconds) * time.Second,
		RevealCodes: cfg.RevealCodes,
	})

	deps := handler.RouterDeps{
		Auth:    handler.NewAuthHandler(authService),
		Users:   handler.NewUserHandler(authService),
		Service: authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
