package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	httpadp "admission-backend/internal/adapter/http"
	"admission-backend/internal/adapter/middleware"
	"admission-backend/internal/adapter/repository/gormrepo"
	"admission-backend/internal/config"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/infrastructure/cache"
	"admission-backend/internal/infrastructure/db"
	"admission-backend/internal/infrastructure/events"
	applog "admission-backend/internal/infrastructure/logger"
	"admission-backend/internal/infrastructure/metrics"
	"admission-backend/internal/infrastructure/password"
	"admission-backend/internal/infrastructure/storage"
	"admission-backend/internal/infrastructure/token"
	"admission-backend/internal/usecase/admin"
	"admission-backend/internal/usecase/auth"
	"admission-backend/internal/usecase/notify"
	"admission-backend/internal/usecase/payment"
	"admission-backend/internal/usecase/student"
	"admission-backend/internal/usecase/verification"
)

func main() {
	cfg := config.Load()

	log, err := applog.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	gormLevel := logger.Info
	if cfg.IsProduction() {
		gormLevel = logger.Warn
	}
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), gormLevel)
	if err != nil {
		log.Fatal("database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var store student.FileStore
	if cfg.CloudinaryURL != "" {
		store, err = storage.NewCloudinaryStore(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	} else {
		store, err = storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	}
	if err != nil {
		log.Fatal("file storage", zap.Error(err))
	}

	var pub audit.Publisher
	if brokers := events.ParseBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kp := events.NewKafkaPublisher(brokers, cfg.KafkaAuditTopic)
		defer kp.Close()
		pub = kp
		log.Info("audit events enabled", zap.Strings("brokers", brokers), zap.String("topic", cfg.KafkaAuditTopic))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	n := notify.New(pub, m, log)

	users := gormrepo.NewUserRepository(gdb)
	profiles := gormrepo.NewProfileRepository(gdb)
	documents := gormrepo.NewDocumentRepository(gdb)
	tx := gormrepo.NewGormUoW(gdb)
	hasher := password.NewBcrypt(cfg.BcryptCost)
	tokens := token.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiry())

	authUC := auth.NewUsecase(users, hasher, tokens, log)
	studentUC := student.NewUsecase(profiles, documents, tx, store, n, cfg.UploadMaxBytes)
	paymentUC := payment.NewUsecase(profiles, tx, studentUC, n, cfg.PaymentLinkBase)
	verifyUC := verification.NewUsecase(profiles, documents, tx, n)
	adminUC := admin.NewUsecase(users, profiles, tx, hasher, n)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := authUC.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Fatal("seed admin", zap.Error(err))
		}
		if created {
			log.Info("admin account created", zap.String("email", cfg.AdminEmail))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.ErrorHandler(log)
	e.Use(echomw.Recover(), echomw.CORS())
	e.Use(middleware.RequestLogger(log, cfg.UploadBaseURL), middleware.Metrics(m))

	if cfg.CloudinaryURL == "" {
		e.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:   httpadp.NewHandler(),
		Auth:     httpadp.NewAuthHandler(authUC, log),
		Student:  httpadp.NewStudentHandler(studentUC, paymentUC, log),
		Verifier: httpadp.NewVerifierHandler(verifyUC, log),
		Admin:    httpadp.NewAdminHandler(adminUC, log),
	}, httpadp.RouteConfig{
		Tokens:      tokens,
		Idempotency: middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log),
		MaxUpload:   cfg.UploadMaxBytes,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
