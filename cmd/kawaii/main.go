package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:           "kawaii",
	Short:         "Fetch random GIFs from kawaii.red",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	fs := root.PersistentFlags()
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("token", "", "API token (defaults to anonymous)")
	fs.String("base-url", "", "API root to request GIFs from")
	fs.Int64("timeout", 0, "Per-request timeout in seconds")
	fs.String("storage", "", "History storage backend (none, bbolt)")
	fs.String("bbolt-path", "", "Path of the bbolt history database")

	root.AddCommand(gifCmd)
	root.AddCommand(categoriesCmd)
	root.AddCommand(historyCmd)
}

func main() {
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kawaii: %v\n", err)
		os.Exit(1)
	}
}
