package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pinforge/pinforge/internal/affiliate"
	"github.com/pinforge/pinforge/internal/config"
	"github.com/pinforge/pinforge/internal/copygen"
	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/httpserver"
	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/pindesign"
	"github.com/pinforge/pinforge/internal/pinterest"
	"github.com/pinforge/pinforge/internal/redis"
	"github.com/pinforge/pinforge/internal/scheduler"
	"github.com/pinforge/pinforge/internal/scraper"
	"github.com/pinforge/pinforge/internal/sources/boards"
	"github.com/pinforge/pinforge/internal/store"
	memorystore "github.com/pinforge/pinforge/internal/store/memory"
	redisstore "github.com/pinforge/pinforge/internal/store/redis"
	"github.com/pinforge/pinforge/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	publisher   *scheduler.Publisher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Store backend: memory by default, redis when configured.
	var (
		linkStore   store.LinkStore
		pinStore    store.PinStore
		redisClient *goredis.Client
	)
	if cfg.StoreBackend == "redis" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")

		rs := redisstore.NewStore(client)
		linkStore, pinStore = rs, rs
		redisClient = client
	} else {
		ms := memorystore.New()
		linkStore, pinStore = ms, ms
	}

	// Language model client; without a key the server still runs and
	// generation requests return a clear error.
	var llm copygen.LLMClient
	if cfg.OpenAIAPIKey == "" {
		loggerClient.Warn("openai api key not set, copy generation disabled")
		llm = copygen.Unconfigured()
	} else {
		client, err := copygen.NewOpenAILLM(copygen.LLMSettings{
			Model:   cfg.OpenAIModel,
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			loggerClient.Errorf("Failed to build LLM client: %v", err)
			os.Exit(1)
		}
		llm = client
	}
	generator, err := copygen.NewGenerator(llm, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to build generator: %v", err)
		os.Exit(1)
	}

	// Optional boards.yaml overriding the built-in demo board list.
	var demoBoards []*domain.Board
	if cfg.BoardsFile != "" {
		cfgBoards, err := boards.NewLoader(cfg.BoardsFile).Load()
		if err != nil {
			loggerClient.Warn("failed to load boards file, using built-in demo boards",
				logger.String("file", cfg.BoardsFile),
				logger.Error(err))
		} else if mapped, err := boards.NewMapper().MapBoards(cfgBoards); err != nil {
			loggerClient.Warn("boards file has no usable entries, using built-in demo boards",
				logger.String("file", cfg.BoardsFile),
				logger.Error(err))
		} else {
			loggerClient.Info("loaded boards file",
				logger.String("file", cfg.BoardsFile),
				logger.Int("boards", len(mapped)))
			demoBoards = mapped
		}
	}

	pinterestClient := pinterest.NewClient(cfg.PinterestBaseURL, cfg.PinterestTimeout, loggerClient)
	pinterestSvc := pinterest.NewService(pinterestClient, pinStore, demoBoards, loggerClient)

	// Due-pin publisher runs only with a server-side token.
	var (
		publisher      *scheduler.Publisher
		publishTrigger chan struct{}
	)
	if cfg.PinterestToken != "" {
		publishTrigger = make(chan struct{}, 1)
		publisher = scheduler.NewPublisher(
			pinterestSvc,
			cfg.PinterestToken,
			loggerClient,
			cfg.PublishInterval,
			publishTrigger,
		)
	} else {
		loggerClient.Info("pinterest token not configured, due-pin publisher disabled")
	}

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		TrustProxy:      cfg.TrustProxy,
		Scraper:         scraper.New(cfg.ScrapeTimeout, loggerClient),
		Generator:       generator,
		Designer:        pindesign.NewDesigner(loggerClient),
		Pinterest:       pinterestSvc,
		Affiliate:       affiliate.NewLedger(linkStore, loggerClient),
		RedisClient:     redisClient,
		ScrapeBurst:     cfg.ScrapeBurst,
		ScrapePerMinute: cfg.ScrapePerMinute,
		PublishTrigger:  publishTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		publisher:   publisher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting pinforge v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("pinforge %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start due-pin publisher (if a token is configured)
	if a.publisher != nil {
		if err := a.publisher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start pin publisher: %w", err)
		}
		a.logger.Info("pin publisher started",
			logger.Duration("interval", a.cfg.PublishInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.publisher != nil {
		a.publisher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ pinforge stopped cleanly")
	return nil
}
