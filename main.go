package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/config"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "e-minutasi",
	Short:         "Court case archiving: track minutation status and physical file locations",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := config.LoadOrDefault(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}

		logger.Init(&logger.Config{
			Level:  loaded.Log.Level,
			Format: loaded.Log.Format,
			Output: cmd.ErrOrStderr(),
		})
		if path != "" {
			slog.Debug("configuration loaded", "path", path)
		} else {
			slog.Debug("no config file found, using defaults")
		}

		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./config.yaml, then $XDG_CONFIG_HOME/e-minutasi/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newScanCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds the services shared by the HTTP server and the CLI commands
type app struct {
	cfg         *config.Config
	store       *service.CaseStore
	filters     *service.FilterState
	summary     *service.SummaryService
	editor      *service.Editor
	scanner     *service.Scanner
	attachments service.AttachmentStore
	held        *service.MemoryAttachments // nil unless attachments are held in memory
}

// newApp seeds the case store and builds every service from cfg
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store := service.NewCaseStore(service.SampleCases())
	filters := &service.FilterState{}
	summary := service.NewSummaryService(&cfg.Summary)
	if !summary.Configured() {
		slog.Warn("summary service has no API key; summaries will report it is not configured")
	}

	a := &app{
		cfg:     cfg,
		store:   store,
		filters: filters,
		summary: summary,
		editor:  service.NewEditor(store, summary),
		scanner: service.NewScanner(
			service.NewSimulatedDecoder(time.Duration(cfg.Scan.DelayMS)*time.Millisecond),
			filters.Set,
		),
	}

	switch cfg.Attachments.Driver {
	case "memory":
		a.held = service.NewMemoryAttachments(
			cfg.Attachments.MaxItems,
			time.Duration(cfg.Attachments.TTLMinutes)*time.Minute,
			cfg.Attachments.MaxBytes(),
			"/api/attachments/",
		)
		a.attachments = a.held
	case "minio":
		minioStore, err := service.NewMinioAttachments(&cfg.Minio)
		if err != nil {
			return nil, err
		}
		if err := minioStore.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure minio bucket: %w", err)
		}
		a.attachments = minioStore
	default:
		return nil, fmt.Errorf("unknown attachments driver %q (valid values: memory, minio)", cfg.Attachments.Driver)
	}

	slog.Info("case store ready", "records", store.Count(), "attachments", cfg.Attachments.Driver)
	return a, nil
}
