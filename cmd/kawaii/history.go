package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/kawaii-hq/kawaii-go/internal/app"
	"github.com/kawaii-hq/kawaii-go/internal/config"
	"github.com/kawaii-hq/kawaii-go/internal/logger"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently fetched GIFs",
	Long:  "Shows GIFs recorded by the history store. Requires --storage bbolt.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWithFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	fetcher, err := app.NewFetcher(context.Background(), cfg, log, nil)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	gifs, err := fetcher.History(limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FETCHED\tCATEGORY\tURL")
	for _, g := range gifs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", g.FetchedAt.Local().Format(time.RFC3339), g.Category, g.URL)
	}
	return w.Flush()
}
