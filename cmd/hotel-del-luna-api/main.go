package main

import (
	"context"
	"crypto/rsa"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appauth "github.com/nyinyi2714/hotel-del-luna-api/internal/application/auth"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/booking"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/config"
	infraauth "github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/auth"
	httprouter "github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/http"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/http/handlers"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/http/middleware"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/persistence/postgres"
	redisstore "github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/persistence/redis"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/queue"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)

	var blacklist ports.TokenBlacklist
	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		blacklist = redisstore.NewTokenBlacklist(redisClient)
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		log.Warn().Msg("redis not configured; logout revocation and confirmation emails disabled")
		taskEnqueuer = queue.NewNoopEnqueuer()
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	var privateKey *rsa.PrivateKey
	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	if pemBytes != nil {
		privateKey, err = infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
		if err != nil {
			log.Fatal().Err(err).Msg("parse JWT private key")
		}
	} else {
		log.Warn().Msg("JWT_PRIVATE_KEY_PATH not set; using ephemeral key, tokens will not survive restart")
		privateKey, err = infraauth.GenerateEphemeralKey()
		if err != nil {
			log.Fatal().Err(err).Msg("generate ephemeral JWT key")
		}
	}
	issuer := infraauth.NewTokenIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	registerUC := appauth.NewRegister(userRepo, hasher, issuer, cfg.JWT.AccessExpiry)
	loginUC := appauth.NewLogin(userRepo, hasher, issuer, cfg.JWT.AccessExpiry)
	logoutUC := appauth.NewLogout(issuer, blacklist)
	bookUC := booking.NewBook(reservationRepo, userRepo, taskEnqueuer, log)
	updateUC := booking.NewUpdate(reservationRepo, userRepo)
	cancelUC := booking.NewCancel(reservationRepo, userRepo, log)
	listUC := booking.NewList(reservationRepo, userRepo)
	quoteUC := booking.NewQuote()

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, issuer, blacklist, userRepo, log)
	reservationsHandler := handlers.NewReservationsHandler(bookUC, updateUC, cancelUC, listUC, quoteUC, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)
	requireJWT := middleware.NewAuthValidator(issuer, blacklist, log).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:         authHandler,
		ReservationsHandler: reservationsHandler,
		HealthHandler:       healthHandler,
		RequireJWT:          requireJWT,
		Log:                 log,
		Secure:              secureMiddleware,
		CORS:                corsMiddleware,
		IPRateLimit:         ipLimit,
		Metrics:             true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
