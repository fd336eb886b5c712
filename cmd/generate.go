package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brogergvhs/errgen/internal/codegen"
	"github.com/brogergvhs/errgen/internal/config"
	"github.com/brogergvhs/errgen/internal/rustdoc"
	"github.com/brogergvhs/errgen/internal/ui"
	"github.com/brogergvhs/errgen/internal/util"

	"github.com/spf13/cobra"
)

var (
	// target
	flagURL     string
	flagOutput  string
	flagTrait   string
	flagWrapper string
	flagDryRun  bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagCFBypass   bool
)

func init() {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Scrape the std Error docs and generate the impl blocks. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runGenerate,
	}

	// target
	generateCmd.Flags().StringVar(&flagURL, "url", "", "std Error trait docs page URL")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "path of the generated Rust file")
	generateCmd.Flags().StringVar(&flagTrait, "trait", "", "extension trait the generated impls implement")
	generateCmd.Flags().StringVar(&flagWrapper, "wrapper", "", "wrapper error type the From impls convert into")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be generated, don't write")

	// headers/auth
	generateCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	generateCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	generateCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	generateCmd.Flags().BoolVar(&flagCFBypass, "cf-bypass", false, "route the request through the Cloudflare bypass transport")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		DocsURL:      flagURL,
		Output:       flagOutput,
		TraitName:    flagTrait,
		WrapperType:  flagWrapper,
		UserAgent:    flagUserAgent,
		Cookie:       flagCookie,
		CookieFile:   flagCookieFile,
		CFBypass:     flagCFBypass,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	fmt.Println("Full config:")
	cfg.Print()
	fmt.Println()

	client, err := newClient(cfg, logSvc)
	if err != nil {
		return err
	}

	ctx := context.Background()
	util.SetupInterruptHandler(cfg.Output)

	start := time.Now()

	fp := ui.NewFetchProgress("error docs")
	body, err := rustdoc.Fetch(ctx, client, cfg.DocsURL, fp.Reader)
	fp.Done()
	if err != nil {
		return err
	}

	entries := rustdoc.Extract(body, logSvc)

	if flagDryRun {
		fmt.Printf("Dry-run: %d entries would be generated.\n\n", len(entries))
		ui.PrintEntryTable(entries)
		return nil
	}

	gen := codegen.Generator{
		TraitName:   cfg.TraitName,
		WrapperType: cfg.WrapperType,
		OutputPath:  cfg.Output,
	}

	util.MarkWriteStarted()
	err = gen.Write(entries)
	util.MarkWriteFinished()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Generation Summary:")
	fmt.Printf("Entries: %d\n", len(entries))
	fmt.Printf("Page:    %s\n", util.Human(int64(len(body))))
	fmt.Printf("Output:  %s\n", cfg.Output)
	fmt.Printf("Time:    %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("\nAll done.")

	return nil
}

func newClient(cfg *config.Config, logSvc *ui.Logger) (*http.Client, error) {
	return util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		CFBypass:    cfg.CFBypass,
		DebugLogger: logSvc,
	})
}
