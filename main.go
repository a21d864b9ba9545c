package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/productshowcase/catalog-service/handlers"
	"github.com/productshowcase/catalog-service/internal/config"
	"github.com/productshowcase/catalog-service/internal/database"
	"github.com/productshowcase/catalog-service/internal/product/handler"
	"github.com/productshowcase/catalog-service/internal/product/repository"
	"github.com/productshowcase/catalog-service/internal/product/service"
	"github.com/productshowcase/catalog-service/pkg/logger"
	"github.com/productshowcase/catalog-service/pkg/metrics"
	"github.com/productshowcase/catalog-service/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is read directly so config errors are logged at the right level
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second, func(attempt int, err error) {
		logger.Warnf("attempt %d/5: failed to connect to MongoDB: %v", attempt, err)
	})
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	logger.Infof("Pinged your deployment. You successfully connected to MongoDB!")

	repo := repository.NewMongoRepo(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
	svc := service.New(repo)

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis for rate limiting: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, svc, rdb)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Server is running on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	_ = client.Disconnect(shutdownCtx)
}

// newRouter assembles middleware and routes. rdb may be nil.
func newRouter(cfg *config.Config, svc service.Service, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestID(), middleware.AccessLog(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	deps := map[string]handlers.Pinger{"mongodb": svc}
	if rdb != nil {
		deps["redis"] = handlers.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	handlers.RegisterHealth(r, startTime, deps)
	handler.RegisterProductRoutes(r, svc)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
