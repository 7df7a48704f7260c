package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"vantraResto/internal/config"
	occupancy "vantraResto/internal/modules/occupancy/domain"
	realtimeusecase "vantraResto/internal/modules/realtime/application/usecase"
	realtimeinfra "vantraResto/internal/modules/realtime/infrastructure"
	realtimetransport "vantraResto/internal/modules/realtime/interface"
	"vantraResto/internal/modules/reservations/application/usecase"
	"vantraResto/internal/modules/reservations/infrastructure"
	transport "vantraResto/internal/modules/reservations/interface"
	"vantraResto/internal/platform/broker"
	"vantraResto/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	// Authoritative store and the usecases in front of it.
	store := infrastructure.NewMemoryStore(infrastructure.WithLatency(cfg.Store.Latency))
	intakeUC := usecase.NewIntakeUseCase(store, time.Now)
	transitionUC := usecase.NewTransitionUseCase(store, time.Now)

	occupancyCfg := occupancy.Config{MaxCapacityPax: cfg.Capacity.MaxPax}

	// Realtime fan-out: the hub relays every store event to connected surfaces.
	hub := realtimeinfra.NewHub()
	feed := realtimeusecase.NewBoardFeed(realtimeusecase.NewBroadcastUseCase(hub), occupancyCfg)
	unsubscribeFeed := store.Subscribe(feed.HandleEventFunc())
	defer unsubscribeFeed()

	// Optional outbound event bridge.
	if publisher := broker.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic); publisher != nil {
		unsubscribeBridge := publisher.Attach(store.Subscribe)
		defer unsubscribeBridge()
		defer publisher.Close()
		slog.Info("event bridge enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	httpHandler := transport.NewHTTPHandler(store, intakeUC, transitionUC, occupancyCfg, cfg.Capacity.Shifts)
	httpHandler.Register(e)
	e.GET("/ws/board", realtimetransport.NewBoardWebsocketHandler(hub, store, transitionUC, occupancyCfg, cfg.Websocket.SendBuffer))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
