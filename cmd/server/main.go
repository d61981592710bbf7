package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	docs "github.com/mergington/announcements-service/docs"
	"github.com/mergington/announcements-service/internal/config"
	api "github.com/mergington/announcements-service/internal/http"
	"github.com/mergington/announcements-service/internal/log"
	"github.com/mergington/announcements-service/internal/metrics"
	"github.com/mergington/announcements-service/internal/queue"
	"github.com/mergington/announcements-service/internal/repo"
	"github.com/mergington/announcements-service/internal/service"
)

// @title Announcements API
// @version 0.1.0
// @description Time-windowed school announcements with teacher-gated management.
// @schemes http https
// @BasePath /
func main() {
	cfg := config.Load()

	if _, err := log.Init(cfg.Prod()); err != nil {
		stdlog.Fatalf("log init: %v", err)
	}

	if cfg.DDEnabled {
		tracer.Start(tracer.WithService("announcements-service"), tracer.WithEnv(cfg.Env))
		defer tracer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		stdlog.Fatalf("mongo connect: %v", err)
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		stdlog.Fatalf("mongo indexes: %v", err)
	}

	var rds *repo.Redis
	if cfg.RedisAddr != "" {
		rds = repo.NewRedis(cfg.RedisAddr)
		defer rds.Close()
	}

	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		pub, err = queue.NewRabbit(cfg.RabbitURL, queue.Exchange)
		if err != nil {
			stdlog.Fatalf("rabbit connect: %v", err)
		}
	}
	defer pub.Close()

	metrics.MustRegister()
	docs.SwaggerInfo.BasePath = "/"

	svc := service.New(store, store)
	h := api.NewHandler(store, svc, pub, rds, cfg.RateLimitPerMin)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	log.Infof("announcements-service listening on :%s", cfg.Port)

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("signal: %s, shutting down", s)
	case err := <-srvErr:
		log.Errorf("server error: %v", err)
	}
}
