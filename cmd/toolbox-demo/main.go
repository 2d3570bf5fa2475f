// Package main is the demo driver for the toolbox consumed queue: it fills
// the queue with work items and prints progress while the pool drains them.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	toolbox "github.com/SebastienArnold/ToolBox"
	"github.com/SebastienArnold/ToolBox/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// workItem is one unit of demo work handed to the queue.
type workItem struct {
	ID  uuid.UUID
	Seq int
}

// parseLogLevel converts a string log level to zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func main() {
	var (
		configFile = flag.String("config", "", "Path to demo configuration file (YAML/JSON)")
		workers    = flag.Int("workers", 0, "Override the configured worker count")
		items      = flag.Int("items", 0, "Override the configured item count")
	)
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *items > 0 {
		cfg.Items = *items
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(parseLogLevel(cfg.LogLevel))
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded", zap.Any("config", cfg))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Demo failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	process := func(item workItem) {
		time.Sleep(cfg.ProcessDelay)
		logger.Debug("Processed item",
			zap.Int("seq", item.Seq),
			zap.String("id", item.ID.String()))
	}

	queue, err := toolbox.New(cfg.Workers, process,
		toolbox.WithLogger(logger),
		toolbox.WithName("demo"))
	if err != nil {
		return err
	}
	// The deferred Close guarantees worker termination on every exit path,
	// the interrupt one included.
	defer queue.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for i := 1; i <= cfg.Items; i++ {
		queue.Submit(workItem{ID: uuid.New(), Seq: i})
		if i == cfg.PauseAfter {
			queue.Pause()
			logger.Info("Paused queue",
				zap.Int("submitted", i),
				zap.Duration("pause_for", cfg.PauseFor))
		}
	}
	logger.Info("All items submitted", zap.Int("items", cfg.Items))

	if cfg.PauseAfter > 0 && cfg.PauseAfter <= cfg.Items {
		time.Sleep(cfg.PauseFor)
		logger.Info("Resuming queue", zap.Int("pending", queue.ItemsCount()))
		queue.Resume()
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-sigCh:
			logger.Info("Interrupted, shutting down",
				zap.Int("pending", queue.ItemsCount()))
			return nil
		case <-ticker.C:
			stats := queue.Stats()
			if stats.Drained() {
				logger.Info("Queue drained",
					zap.Uint64("processed", stats.Processed),
					zap.Uint64("failed", stats.Failed))
				return nil
			}
			logger.Info("Progress",
				zap.Int("pending", stats.Pending),
				zap.Int("in_flight", stats.InFlight),
				zap.Uint64("processed", stats.Processed))
		}
	}
}
