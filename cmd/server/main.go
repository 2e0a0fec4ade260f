package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/mailform/modules/contact"
	"github.com/dmitrymomot/mailform/pkg/config"
	"github.com/dmitrymomot/mailform/pkg/httpserver"
	"github.com/dmitrymomot/mailform/pkg/logger"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/pkg/metrics"
	"github.com/dmitrymomot/mailform/pkg/ratelimiter"
	"github.com/dmitrymomot/mailform/pkg/redis"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	ctx := context.Background()

	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		mailCfg    mailer.Config
		redisCfg   redis.Config
		contactCfg contact.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mailCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&contactCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "mailform"))
	logger.SetAsDefault(log)

	metrics.RegisterDefault()

	// The mail transport is the only fallible dependency. A misconfigured
	// relay degrades the service instead of preventing startup: submissions
	// answer with server_misconfigured while health stays green.
	var sender mailer.Sender
	if mailCfg.DevDir != "" {
		sender = mailer.NewDevSender(mailCfg.DevDir)
		log.Info("using development mail sender", slog.String("dir", mailCfg.DevDir))
	} else if s, err := mailer.NewSMTPSender(mailCfg); err != nil {
		log.Error("mail transport unavailable, submissions will be rejected",
			logger.Component("mailer"), logger.Error(err))
	} else {
		sender = s
	}

	var (
		store     ratelimiter.Store
		readiness []func(context.Context) error
	)
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		store = ratelimiter.NewRedisStore(client)
		readiness = append(readiness, redis.Healthcheck(client))
		log.Info("rate limiting backed by redis")
	} else {
		ms := ratelimiter.NewMemoryStore()
		defer ms.Close()
		store = ms
	}

	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       contactCfg.RateLimitQuota,
		RefillRate:     contactCfg.RateLimitQuota,
		RefillInterval: contactCfg.RateLimitWindow,
	})
	if err != nil {
		log.Error("invalid rate limit configuration", logger.Error(err))
		os.Exit(1)
	}

	svc := contact.NewService(bucket, sender, mailCfg.ReceiverEmail, contactCfg, log)
	router := contact.Router(svc, contactCfg)
	router.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, readiness...))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
