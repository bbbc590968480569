package main

import (
	"fmt"

	"github.com/kawaii-hq/kawaii-go/pkg/kawaii"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the supported GIF categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, c := range kawaii.Categories() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
				return err
			}
		}
		return nil
	},
}
