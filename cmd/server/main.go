package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-service/internal/audit"
	"order-service/internal/config"
	handlers "order-service/internal/controllers/http"
	"order-service/internal/domain"
	mkafka "order-service/internal/infra/kafka"
	mmysql "order-service/internal/infra/mysql"
	"order-service/internal/infra/search"
	mysqlrepo "order-service/internal/repository/mysql"
	"order-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db: connect")
	}
	repo := mysqlrepo.NewOrderRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	defer redisClient.Close()

	index := search.NewRedisIndex(redisClient)
	if err := index.EnsureIndex(ctx); err != nil {
		logger.Warn().Err(err).Msg("search index provisioning failed, continuing")
	}

	publisher := mkafka.NewPublisher(cfg.KafkaBrokers)
	defer publisher.Close()
	if err := publisher.EnsureTopics(ctx, domain.TopicOrderCreated, domain.TopicOrderStatusUpdated); err != nil {
		logger.Warn().Err(err).Msg("topic provisioning failed, continuing")
	}

	recorder := audit.NewLogger(logger)
	service := services.NewOrderService(repo, index, publisher, recorder, logger)
	handler := handlers.NewHandler(service)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("port", cfg.Port).Msg("starting order service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server run")
	}
	logger.Info().Msg("server stopped")
}
