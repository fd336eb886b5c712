package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/errgen/internal/config"
	"github.com/brogergvhs/errgen/internal/rustdoc"
	"github.com/brogergvhs/errgen/internal/ui"

	"github.com/spf13/cobra"
)

var flagInspectURL string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Fetch the docs page and report its structure without generating anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
			DocsURL:      flagInspectURL,
		})
		if err != nil {
			return err
		}

		logSvc := ui.NewLogger(cfg.Debug)

		client, err := newClient(cfg, logSvc)
		if err != nil {
			return err
		}

		body, err := rustdoc.Fetch(context.Background(), client, cfg.DocsURL, nil)
		if err != nil {
			return err
		}

		stats, err := rustdoc.Summarize(body)
		if err != nil {
			return err
		}

		fmt.Printf("Page: %s\n", cfg.DocsURL)
		fmt.Printf("Anchors: %d\n", stats.Anchors)
		fmt.Printf("Implementer markers: %d\n", stats.Markers)
		fmt.Println("Sections:")
		for _, s := range stats.Sections {
			fmt.Printf("  - %s\n", s)
		}
		fmt.Println()

		entries := rustdoc.Extract(body, logSvc)
		fmt.Printf("Surviving entries: %d (run with --debug to see why the rest were skipped)\n\n", len(entries))
		ui.PrintEntryTable(entries)

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectURL, "url", "", "std Error trait docs page URL")
	rootCmd.AddCommand(inspectCmd)
}
