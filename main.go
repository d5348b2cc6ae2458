package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/example/wortbot/internal/bot"
	"github.com/example/wortbot/internal/config"
	"github.com/example/wortbot/internal/delivery"
	"github.com/example/wortbot/internal/scheduler"
	"github.com/example/wortbot/internal/store"
	"github.com/example/wortbot/internal/vocab"
)

const usage = `Usage: wortbot <command> [flags]

Commands:
  serve        run the interactive bot with the delivery scheduler
  send-word    deliver today's lesson (-user <chat id>, or all users)
  send-quiz    deliver today's quiz (-user <chat id>, or all users)
  send-report  deliver the weekly report (-user <chat id>, or all users)
  import       import vocabulary from an Excel or CSV file (-file <path>)
`

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if err := vocab.Connect(cfg.DataDir); err != nil {
		logger.Fatal("failed to open vocabulary database", zap.Error(err))
	}
	defer vocab.Close()

	switch os.Args[1] {
	case "serve":
		runServe(cfg, logger)
	case "send-word":
		runBatch(cfg, logger, os.Args[2:], func(svc *delivery.Service) func(string) error {
			return svc.DeliverLesson
		})
	case "send-quiz":
		runBatch(cfg, logger, os.Args[2:], func(svc *delivery.Service) func(string) error {
			return svc.DeliverQuiz
		})
	case "send-report":
		runBatch(cfg, logger, os.Args[2:], func(svc *delivery.Service) func(string) error {
			return svc.DeliverWeeklyReport
		})
	case "import":
		runImport(logger, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// buildService assembles the delivery service shared by serve and the batch
// commands.
func buildService(cfg *config.Config, logger *zap.Logger) (*delivery.Service, *bot.Telegram, error) {
	if err := vocab.EnsureSeeded(); err != nil {
		return nil, nil, fmt.Errorf("failed to seed vocabulary: %w", err)
	}
	catalog, err := vocab.LoadCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary catalog: %w", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	tg, err := bot.NewTelegram(cfg.TelegramToken)
	if err != nil {
		return nil, nil, err
	}

	return delivery.New(st, catalog, tg, logger, nil), tg, nil
}

func runServe(cfg *config.Config, logger *zap.Logger) {
	svc, tg, err := buildService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build service", zap.Error(err))
	}

	sched := scheduler.New(svc, logger)
	sched.Start()
	defer sched.Stop()

	b := bot.New(tg, svc, logger, cfg.AdminIDs)
	go func() {
		if err := b.Start(); err != nil {
			logger.Error("bot stopped with error", zap.Error(err))
		}
	}()

	logger.Info("wortbot started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))
	b.Stop()
}

func runBatch(cfg *config.Config, logger *zap.Logger, args []string, step func(*delivery.Service) func(string) error) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	user := fs.String("user", "", "chat id of a single user; all stored users when empty")
	fs.Parse(args)

	svc, _, err := buildService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build service", zap.Error(err))
	}

	run := step(svc)
	if *user != "" {
		if err := run(*user); err != nil {
			logger.Fatal("delivery failed", zap.String("chat_id", *user), zap.Error(err))
		}
		return
	}
	if err := svc.ForAllLearners(run); err != nil {
		logger.Fatal("batch run failed", zap.Error(err))
	}
}

func runImport(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "path to the Excel or CSV vocabulary file")
	sheet := fs.String("sheet", "Sheet1", "sheet name for Excel files")
	level := fs.String("level", "A1", "default CEFR level for rows without one")
	category := fs.String("category", "general", "default category for rows without one")
	fs.Parse(args)

	if *file == "" {
		logger.Fatal("missing -file flag")
	}

	importCfg := vocab.DefaultImportConfig()
	importCfg.FilePath = *file
	importCfg.SheetName = *sheet
	importCfg.Level = *level
	importCfg.Category = *category

	result, err := vocab.ImportWords(importCfg)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
	logger.Info("import complete",
		zap.Int("processed", result.TotalProcessed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))
	for _, e := range result.Errors {
		logger.Warn("import row error", zap.String("detail", e))
	}
}
