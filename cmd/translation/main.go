// Command translation runs one batch of pending translation jobs. Run it
// from a scheduler; two runs must not overlap.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"pantry-backend/cmd/config"
	"pantry-backend/entities"
	"pantry-backend/internal/utils"
	"pantry-backend/pkg/translation"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	reset := flag.String("reset", "", "comma separated job statuses to put back to pending (\"all\" for every job)")
	recoverAfter := flag.Int("recover", -1, "put in_progress jobs untouched for this many minutes back to pending")
	clearAll := flag.Bool("clear", false, "delete stored translations for the target language and reset every job")
	noRun := flag.Bool("no-run", false, "only apply maintenance flags, do not process a batch")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFile, "translation")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translator := translation.NewDeepLTranslator(translation.DeepLConfig{
		URL:    cfg.DeepLAPIURL,
		APIKey: cfg.DeepLAPIKey,
	}, logger)
	queue := translation.NewQueue(translation.NewTranslationRepository(db), translator, translation.QueueConfig{
		TargetLang: cfg.TargetLang,
		BatchSize:  cfg.TranslationBatchSize,
	}, logger)

	if err := maintain(ctx, queue, *clearAll, *reset, *recoverAfter); err != nil {
		logger.Fatal("translation maintenance failed", zap.Error(err))
	}
	if *noRun {
		return
	}

	res, err := queue.RunBatch(ctx)
	if err != nil {
		logger.Fatal("translation batch failed", zap.Error(err))
	}
	logger.Info("translation batch finished",
		zap.String("lang", queue.Lang()),
		zap.Int("processed", res.Processed),
		zap.Int("done", res.Done),
		zap.Int("failed", res.Failed),
	)
}

func maintain(ctx context.Context, queue translation.Queue, clearAll bool, reset string, recoverAfter int) error {
	statuses, err := parseStatuses(reset)
	if err != nil {
		return err
	}

	if clearAll {
		if err := queue.ClearTranslations(ctx); err != nil {
			return err
		}
		if _, err := queue.ResetJobs(ctx); err != nil {
			return err
		}
	}

	if reset != "" {
		if _, err := queue.ResetJobs(ctx, statuses...); err != nil {
			return err
		}
	}

	if recoverAfter >= 0 {
		staleBefore := time.Now().UTC().Add(-time.Duration(recoverAfter) * time.Minute)
		if _, err := queue.RecoverStuck(ctx, staleBefore); err != nil {
			return err
		}
	}
	return nil
}

var jobStatuses = []string{
	entities.JobStatusPending,
	entities.JobStatusInProgress,
	entities.JobStatusDone,
	entities.JobStatusError,
}

// parseStatuses reads the -reset value. "all" and "" yield no filter.
func parseStatuses(raw string) ([]string, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}
	var statuses []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !slices.Contains(jobStatuses, s) {
			return nil, fmt.Errorf("unknown job status %q, want one of %s or all", s, strings.Join(jobStatuses, ", "))
		}
		statuses = append(statuses, s)
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("-reset %q names no job status", raw)
	}
	return statuses, nil
}
