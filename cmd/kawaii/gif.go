package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/kawaii-hq/kawaii-go/internal/app"
	"github.com/kawaii-hq/kawaii-go/internal/config"
	"github.com/kawaii-hq/kawaii-go/internal/logger"
	"github.com/kawaii-hq/kawaii-go/pkg/kawaii"
	"github.com/spf13/cobra"
)

var gifCmd = &cobra.Command{
	Use:   "gif [category...]",
	Short: "Print a random GIF URL for each category",
	Long: "Prints one random GIF URL per category. Without arguments the configured " +
		"default category is used. With --interval the fetch repeats until interrupted.",
	RunE: runGif,
}

func init() {
	fs := gifCmd.Flags()
	fs.Int64("interval", 0, "Repeat every N seconds until interrupted (0 runs once)")
	fs.String("publishers-file", "", "YAML/JSON file describing where to publish fetched GIFs")
}

func runGif(cmd *cobra.Command, argv []string) error {
	cfg, err := config.LoadWithFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	categories, err := parseCategories(argv, cfg.DefaultCategory)
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, err := app.NewFetcher(ctx, cfg, log, cmd.OutOrStdout())
	if err != nil {
		logger.ErrorObj("failed to initialize fetcher", "error", err.Error())
		return err
	}
	defer func() {
		if err := fetcher.Close(); err != nil {
			logger.ErrorObj("storage close failed", "error", err.Error())
		}
	}()

	return fetcher.Run(ctx, categories)
}

func parseCategories(argv []string, fallback string) ([]kawaii.Category, error) {
	if len(argv) == 0 {
		argv = []string{fallback}
	}
	out := make([]kawaii.Category, 0, len(argv))
	for _, raw := range argv {
		c, err := kawaii.ParseCategory(raw)
		if err != nil {
			return nil, fmt.Errorf("%w (run 'kawaii categories' for the list)", err)
		}
		out = append(out, c)
	}
	return out, nil
}
