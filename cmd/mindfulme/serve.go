package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mindfulme/internal/cache"
	"mindfulme/internal/config"
	"mindfulme/internal/fallback"
	"mindfulme/internal/publisher"
	"mindfulme/internal/scheduler"
	"mindfulme/internal/server"
	"mindfulme/internal/service"
	"mindfulme/internal/source/newsapi"
	"mindfulme/internal/source/openweather"
	"mindfulme/internal/source/quotable"
)

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger("info")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	logger = setupLogger(cfg.LogLevel)

	responseCache, err := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	quotes := quotable.New(quotable.Config{
		BaseURL: cfg.Quotes.BaseURL,
		Timeout: cfg.Quotes.Timeout,
	}, logger)
	weather := openweather.New(openweather.Config{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  cfg.Weather.APIKey,
		Timeout: cfg.Weather.Timeout,
	}, logger)
	news := newsapi.New(newsapi.Config{
		BaseURL: cfg.News.BaseURL,
		APIKey:  cfg.News.APIKey,
		Timeout: cfg.News.Timeout,
	}, logger)

	var moodPublisher service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq, mood events disabled", "error", err)
		} else {
			defer rabbitMQ.Close()
			moodPublisher = rabbitMQ
		}
	}

	fb := fallback.NewStore(nil)
	srv := server.New(server.Services{
		Quotes:  service.NewQuoteService(quotes, fb, logger),
		Weather: service.NewWeatherService(weather, fb, logger),
		News:    service.NewNewsService(news, fb, logger),
		Mood:    service.NewMoodService(moodPublisher, logger),
	}, responseCache, server.Options{
		ServerID:          cfg.Server.ServerID,
		WeatherConfigured: weather.Configured(),
		NewsConfigured:    news.Configured(),
	}, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	janitor := scheduler.NewScheduler(sweepTask(responseCache), cfg.Cache.SweepInterval, logger)
	go func() {
		if err := janitor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("janitor error", "error", err)
		}
	}()

	logger.Info("starting mindfulme",
		"version", server.Version,
		"port", cfg.Server.Port,
		"cache_ttl", cfg.Cache.TTL,
		"weather_configured", weather.Configured(),
		"news_configured", news.Configured(),
		"mood_events", moodPublisher != nil,
	)

	if err := srv.Run(ctx, ":"+cfg.Server.Port, cfg.Server.ShutdownTimeout); err != nil {
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("stopped")
	return nil
}

// sweepTask drops expired cache entries.
func sweepTask(c *cache.Cache) scheduler.Task {
	return scheduler.TaskFunc{
		Label: "cache-sweep",
		Fn: func(context.Context) (int, error) {
			return c.Sweep(), nil
		},
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
