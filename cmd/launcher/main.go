package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"mention_launcher/internal/chain"
	"mention_launcher/internal/config"
	"mention_launcher/internal/generator"
	"mention_launcher/internal/notifier"
	"mention_launcher/internal/poller"
	"mention_launcher/internal/publisher"
	"mention_launcher/internal/ratelimit"
	"mention_launcher/internal/scheduler"
	"mention_launcher/internal/service"
	"mention_launcher/internal/shortener"
	"mention_launcher/internal/source/twitter"
	"mention_launcher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	twitterClient := twitter.New(twitter.Config{
		BaseURL:        cfg.Twitter.BaseURL,
		BearerToken:    cfg.Twitter.BearerToken,
		AppKey:         cfg.Twitter.AppKey,
		AppSecret:      cfg.Twitter.AppSecret,
		AccessToken:    cfg.Twitter.AccessToken,
		AccessSecret:   cfg.Twitter.AccessSecret,
		Timeout:        cfg.Twitter.Timeout,
		ReplyInterval:  cfg.Twitter.ReplyInterval,
		MaxAttempts:    cfg.Twitter.Retry.MaxAttempts,
		InitialBackoff: cfg.Twitter.Retry.InitialBackoff,
		MaxBackoff:     cfg.Twitter.Retry.MaxBackoff,
	}, logger)

	chainClient, err := chain.New(ctx, chain.Config{
		RPCURL:            cfg.Chain.RPCURL,
		ChainID:           cfg.Chain.ChainID,
		PrivateKey:        cfg.Chain.PrivateKey,
		ContractAddress:   cfg.Chain.ContractAddress,
		TreasuryAddress:   cfg.Chain.TreasuryAddress,
		MintFeeWei:        cfg.Chain.MintFeeWei,
		MarketURLTemplate: cfg.Chain.MarketURLTemplate,
	}, chain.NewSubgraph(cfg.Chain.SubgraphURL, cfg.Chain.SubgraphTimeout, cfg.Chain.PriorMilestoneLength), logger)
	if err != nil {
		logger.Error("failed to connect to chain", "error", err)
		os.Exit(1)
	}
	defer chainClient.Close()

	llm := anthropic.NewClient(
		option.WithAPIKey(cfg.Generator.AnthropicAPIKey),
		option.WithRequestTimeout(cfg.Generator.Timeout),
	)
	gen := generator.New(
		generator.NewAnthropicDetails(llm, cfg.Generator.Model),
		generator.NewImageAPI(cfg.Generator.ImageAPIURL, cfg.Generator.ImageAPIKey, cfg.Generator.ImageModel, cfg.Generator.Timeout),
		generator.NewPinata(cfg.Generator.PinataAPIURL, cfg.Generator.PinataJWT, cfg.Generator.Timeout),
		logger,
	)

	deps := service.Deps{
		Poller: poller.New(twitterClient, poller.Config{
			Query:    cfg.Bot.Handle + " -is:retweet",
			PageSize: cfg.Bot.PageSize,
		}, logger),
		Limiter: ratelimit.New(ratelimit.Config{
			MaxPerUser:   cfg.RateLimits.MaxPerUser,
			UserWindow:   cfg.RateLimits.UserWindow,
			GlobalPerDay: cfg.RateLimits.GlobalPerDay,
		}),
		Transport: twitterClient,
		Generator: gen,
		Chain:     chainClient,
	}

	if cfg.Slack.InfoWebhookURL != "" || cfg.Slack.ErrorWebhookURL != "" {
		deps.Notifier = notifier.NewSlack(notifier.Config{
			InfoWebhookURL:  cfg.Slack.InfoWebhookURL,
			ErrorWebhookURL: cfg.Slack.ErrorWebhookURL,
			AppName:         cfg.Slack.AppName,
		}, logger)
	}

	if cfg.Shortener.APIKey != "" {
		deps.Shortener = shortener.New(shortener.Config{
			APIURL: cfg.Shortener.APIURL,
			APIKey: cfg.Shortener.APIKey,
			Domain: cfg.Shortener.Domain,
		}, logger)
	}

	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")
		deps.Store = postgres.NewLaunchStore(db)
	}

	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		deps.Publisher = rabbitMQ
	}

	launcher := service.NewLauncher(deps, cfg.Bot, cfg.Security, logger)
	sched := scheduler.NewScheduler(launcher, cfg.Bot.PollInterval, cfg.Bot.StartupDelay, logger)

	logger.Info("starting mention launcher",
		"handle", cfg.Bot.Handle,
		"interval", cfg.Bot.PollInterval,
		"history", deps.Store != nil,
		"events", deps.Publisher != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		launcher.Wait()
		logger.Info("launch queue drained")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
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
