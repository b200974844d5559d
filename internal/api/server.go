package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/SundayYogurt/social_user_service/config"
	"github.com/SundayYogurt/social_user_service/infra/cache"
	"github.com/SundayYogurt/social_user_service/infra/queue"
	"github.com/SundayYogurt/social_user_service/internal/api/events"
	"github.com/SundayYogurt/social_user_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/social_user_service/internal/api/rpc"
	"github.com/SundayYogurt/social_user_service/internal/helper"
	"github.com/SundayYogurt/social_user_service/internal/interfaces"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is not set")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		// raw pg errors keep the constraint name for duplicate detection
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}
	return db, nil
}

// StartServer wires the service graph and serves gRPC, the health endpoints
// and the user.created consumer until ctx is cancelled.
func StartServer(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	// ---------- DB ----------
	db, err := OpenDatabase(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	log.Info("database connected")

	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	log.Info("migration successful")

	checks := map[string]handlers.Check{"database": sqlDB.PingContext}

	// ---------- Infra ----------
	var setCache interfaces.SetCache
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("redis unavailable, uniqueness checks go to the database", zap.Error(err))
	} else {
		defer redisClient.Close()
		rc := cache.NewRedisSetCache(redisClient, cfg.RedisPrefix)
		setCache = rc
		checks["redis"] = rc.Ping
	}

	sec := queue.Security{Username: cfg.KafkaUsername, Password: cfg.KafkaPassword, TLS: cfg.KafkaTLS}
	var producer interfaces.ProducerHandler
	if cfg.KafkaBroker != "" {
		p := queue.NewProducer(cfg.KafkaBroker, sec, log)
		defer p.Close()
		producer = p
	} else {
		log.Warn("KAFKA_BROKER not set, user.created is not published")
	}

	// ---------- Services ----------
	store := repository.NewStore(db)
	userSvc := services.NewUserService(store, setCache, helper.NewBcryptHasher(cfg.BcryptCost), producer, cfg.KafkaTopicUserCreated, log)
	addressSvc := services.NewAddressService(store, log)
	friendSvc := services.NewFriendRequestService(store, log)
	aboutSvc := services.NewUserAboutService(store, log)

	// ---------- Transport ----------
	hs := health.NewServer()
	grpcServer := rpc.NewServer(rpc.NewHandler(userSvc, addressSvc, friendSvc, log), hs, log)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handlers.NewHealthHandler(checks).SetupRoutes(app)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		return app.Listen(cfg.HTTPAddr)
	})
	if cfg.KafkaBroker != "" {
		consumer := queue.NewKafkaConsumer(cfg.KafkaBroker, cfg.KafkaTopicUserCreated, cfg.KafkaGroupID, sec,
			events.NewUserCreatedHandler(aboutSvc, log), log)
		g.Go(func() error {
			consumer.Listen(ctx)
			return consumer.Close()
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		hs.Shutdown()
		grpcServer.GracefulStop()
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	return g.Wait()
}
