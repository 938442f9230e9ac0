// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	catalogApp "github.com/vatika/v1/internal/application/catalog"
	recipeApp "github.com/vatika/v1/internal/application/recipe"
	"github.com/vatika/v1/internal/infrastructure/ai"
	"github.com/vatika/v1/internal/infrastructure/ai/gemini"
	"github.com/vatika/v1/internal/infrastructure/ai/openai"
	"github.com/vatika/v1/internal/infrastructure/config"
	"github.com/vatika/v1/internal/infrastructure/http/apiserver"
	"github.com/vatika/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/vatika/v1/internal/infrastructure/persistence/gorm"
	"github.com/vatika/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/vatika/v1/internal/infrastructure/persistence/redis"
	"github.com/vatika/v1/internal/infrastructure/seed"
	"github.com/vatika/v1/internal/ports/inbound"
	"github.com/vatika/v1/internal/ports/outbound"
	"github.com/vatika/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RedisModule,
	CacheModule,
	RepositoryModule,
	EventModule,
	AIModule,
	ServiceModule,
	MonitoringModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := gormRepo.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
		)
		return db, nil
	},
)

// RedisModule provides the shared Redis client, nil when Redis is disabled
var RedisModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*goredis.Client, error) {
		if !cfg.Redis.Enabled {
			return nil, nil
		}

		client, err := redisRepo.NewClient(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr()))
		return client, nil
	},
)

// CacheModule provides the cache repository
var CacheModule = fx.Provide(
	NewCacheRepository,
)

// NewCacheRepository selects Redis when a client is present, otherwise the
// in-memory implementation
func NewCacheRepository(client *goredis.Client, log *zap.Logger) outbound.CacheRepository {
	if client == nil {
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository()
	}
	return redisRepo.NewCacheRepository(client, log)
}

// NewBookmarkStore selects the Redis store when a client is present,
// otherwise the relational one
func NewBookmarkStore(client *goredis.Client, db *gorm.DB) outbound.BookmarkStore {
	if client != nil {
		return redisRepo.NewBookmarkStore(client)
	}
	return gormRepo.NewBookmarkStore(db)
}

// NewFeaturedStore selects the Redis store when a client is present,
// otherwise the relational one
func NewFeaturedStore(client *goredis.Client, db *gorm.DB) outbound.FeaturedStore {
	if client != nil {
		return redisRepo.NewFeaturedStore(client)
	}
	return gormRepo.NewFeaturedStore(db)
}

// RepositoryModule provides repository implementations. Bookmarks and the
// featured pointer live in Redis when it is enabled.
var RepositoryModule = fx.Provide(
	gormRepo.NewPlantRepository,
	gormRepo.NewRecipeRepository,
	NewBookmarkStore,
	NewFeaturedStore,
)

// EventModule provides domain event dispatch
var EventModule = fx.Provide(
	NewEventDispatcher,
)

// AIModule provides the text-generation provider chain
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.TextGenerator, *ai.HealthChecker) {
		var generators []outbound.TextGenerator
		if cfg.AI.OpenAIKey != "" {
			generators = append(generators, openai.NewClient(cfg.AI, log))
		}
		if cfg.AI.GeminiKey != "" {
			generators = append(generators, gemini.NewClient(cfg.AI, log))
		}

		if len(generators) == 0 {
			log.Warn("No generation providers configured, recipe generation will use samples")
		}

		chain := ai.NewChain(log, cfg.AI.RequestsPerMin, generators...)
		return chain, ai.NewHealthChecker(log, generators...)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		plantRepo outbound.PlantRepository,
		bookmarks outbound.BookmarkStore,
		featured outbound.FeaturedStore,
		events *EventDispatcher,
		log *zap.Logger,
	) inbound.CatalogService {
		return catalogApp.NewService(plantRepo, bookmarks, featured, events, log)
	},
	func(
		recipeRepo outbound.RecipeRepository,
		catalog inbound.CatalogService,
		generator outbound.TextGenerator,
		cache outbound.CacheRepository,
		log *zap.Logger,
	) inbound.RecipeService {
		return recipeApp.NewService(recipeRepo, catalog, generator, cache, log)
	},
)

// MonitoringModule provides metrics
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewServer,
)

// LifecycleModule runs seeding, the first catalog load and the server
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	redisClient *goredis.Client,
	plantRepo outbound.PlantRepository,
	catalog inbound.CatalogService,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Vatika",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.Catalog.SeedOnEmpty {
				if err := seed.NewSeeder(plantRepo, log).Run(ctx); err != nil {
					return err
				}
			}

			loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.ReloadTimeout)
			defer cancel()
			if err := catalog.Reload(loadCtx); err != nil {
				// Queries fail with NotReady until a later reload succeeds
				log.Error("Initial catalog load failed", zap.Error(err))
			}

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Vatika")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis client", zap.Error(err))
				}
			}

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
