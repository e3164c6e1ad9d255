package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"ozonsync_api/config"
	"ozonsync_api/internal/ozon/business/services"
	"ozonsync_api/internal/ozon/business/services/get"
	"ozonsync_api/internal/ozon/business/services/update"
	"ozonsync_api/internal/ozon/pkg/clients"
	"ozonsync_api/internal/spreadsheet"
	"ozonsync_api/internal/telegram/app"
	"ozonsync_api/internal/telegram/session"
	"ozonsync_api/metrics"
	"ozonsync_api/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
		cfg = config.DefaultConfig()
	}

	log, err := logger.NewLogger(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development}, "ozonsync")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	creds := config.GetCredentials()
	if !creds.Complete() {
		log.Errorf("missing environment variables: OZON_CLIENT_ID, OZON_API_KEY, TELEGRAM_BOT_TOKEN")
		os.Exit(1)
	}

	v := cfg.Ozon.OzonValues
	auth := services.NewHeaderAuth(creds.OzonClientID, creds.OzonApiKey)
	var limiter *rate.Limiter
	if v.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(v.RatePerMinute)), v.RatePerMinute)
	}
	client := clients.NewBaseClient(cfg.Ozon.BaseURL, auth, log, time.Duration(v.RequestTimeout)*time.Second, limiter)

	products := get.NewProductListService(client, log, v.PageLimit)
	freight := get.NewFreightService(client, log, v.ChunkSize)
	planner := update.NewPlanner(v)
	dispatcher := update.NewDispatcher(client, log)
	syncService := update.NewSyncService(products, freight, planner, dispatcher, log)

	bot, err := tgbotapi.NewBotAPI(creds.TelegramToken)
	if err != nil {
		log.Errorf("telegram authorization failed: %v", err)
		os.Exit(1)
	}

	server := app.NewBotServer(
		bot,
		session.NewMemoryStore(),
		spreadsheet.NewProcessor(log),
		syncService,
		cfg.Telegram.FilesDir,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := chi.NewRouter()
	router.Handle("/metrics", metrics.MetricsHandler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	opsSrv := &http.Server{Addr: cfg.Ops.Addr, Handler: router}
	go func() {
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("ops server: %v", err)
		}
	}()

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("bot stopped: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = opsSrv.Shutdown(shutdownCtx)
}
