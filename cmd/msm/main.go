package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinhoo5694/MSM/config"
	"github.com/jinhoo5694/MSM/internal/cli"
	"github.com/jinhoo5694/MSM/internal/logger"
	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/report"
	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/jinhoo5694/MSM/internal/stock/changelog"
	stockRepo "github.com/jinhoo5694/MSM/internal/stock/repository"
	stockUC "github.com/jinhoo5694/MSM/internal/stock/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 3. Initialize Store and Ledger
	repo := stockRepo.NewXLSXRepository(cfg.Store.Path)
	if err := repo.Init(ctx); err != nil {
		appLogger.Fatal("failed to initialize product store", zap.Error(err))
	}
	changeLog := changelog.New(cfg.ChangeLog.Path)

	// 4. Initialize Exporter and Service
	settings := model.LoadAutoSaveSettings(cfg.AutoSave.SettingsPath)
	exporter := report.NewExporter(repo, changeLog, settings, cfg.AutoSave.FallbackDir)
	notifier := &stock.LoggingNotifier{Logger: appLogger}
	uc := stockUC.NewStockUseCase(repo, changeLog, exporter, notifier, appLogger)

	// 5. Run CLI
	root := cli.NewRootCommand(uc)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
