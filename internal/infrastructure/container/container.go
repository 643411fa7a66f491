package container

import (
	"context"
	"fmt"
	"time"

	"github.com/amora-app/amora-backend/internal/config"
	httpdelivery "github.com/amora-app/amora-backend/internal/delivery/http"
	"github.com/amora-app/amora-backend/internal/delivery/http/handler"
	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/infrastructure/database"
	"github.com/amora-app/amora-backend/internal/infrastructure/gemini"
	"github.com/amora-app/amora-backend/internal/infrastructure/server"
	"github.com/amora-app/amora-backend/internal/infrastructure/storage"
	"github.com/amora-app/amora-backend/internal/repository/postgres"
	redisrepo "github.com/amora-app/amora-backend/internal/repository/redis"
	"github.com/amora-app/amora-backend/internal/usecase/auth"
	"github.com/amora-app/amora-backend/internal/usecase/block"
	"github.com/amora-app/amora-backend/internal/usecase/discover"
	"github.com/amora-app/amora-backend/internal/usecase/match"
	"github.com/amora-app/amora-backend/internal/usecase/message"
	"github.com/amora-app/amora-backend/internal/usecase/notification"
	"github.com/amora-app/amora-backend/internal/usecase/photo"
	"github.com/amora-app/amora-backend/internal/usecase/preferences"
	"github.com/amora-app/amora-backend/internal/usecase/profile"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	photoStorage, err := storage.NewS3Storage(ctx, &cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := photoStorage.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure photo bucket: %w", err)
	}

	// Optional; everything degrades gracefully without it.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("failed to initialize gemini client, continuing without AI features", zap.Error(err))
			geminiClient = nil
		}
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	blockRepo := postgres.NewBlockRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Use cases
	authUseCase := auth.NewAuthUseCase(
		sessionRepo,
		profileRepo,
		cfg.Identity.SharedSecret,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionTTLHours)*time.Hour,
		logger,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo, photoRepo)
	preferencesUseCase := preferences.NewPreferencesUseCase(prefRepo, profileRepo)
	photoUseCase := photo.NewPhotoUseCase(photoRepo, profileRepo, photoStorage, logger)
	discoverUseCase := discover.NewDiscoverUseCase(
		profileRepo, prefRepo, matchRepo, blockRepo, photoRepo, photoStorage, logger,
	)
	matchUseCase := match.NewMatchUseCase(
		matchRepo, profileRepo, photoRepo, notificationRepo, photoStorage, geminiClient, logger,
	)
	messageUseCase := message.NewMessageUseCase(messageRepo, matchRepo, profileRepo)
	blockUseCase := block.NewBlockUseCase(blockRepo, profileRepo)
	notificationUseCase := notification.NewNotificationUseCase(notificationRepo, profileRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	preferencesHandler := handler.NewPreferencesHandler(preferencesUseCase)
	photoHandler := handler.NewPhotoHandler(photoUseCase)
	discoverHandler := handler.NewDiscoverHandler(discoverUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	blockHandler := handler.NewBlockHandler(blockUseCase)
	notificationHandler := handler.NewNotificationHandler(notificationUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		preferencesHandler,
		photoHandler,
		discoverHandler,
		matchHandler,
		messageHandler,
		blockHandler,
		notificationHandler,
		authMiddleware,
	)

	srv := server.NewServer(&cfg.Server, router.Setup(), logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
