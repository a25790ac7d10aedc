package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/ingest"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Ingest statement files into the current profile",
		Long: `Parse one or more statement files (CSV, PDF, OFX/QFX), categorize the
transactions, apply the profile's rules, and merge the result into the
profile. Files that fail to parse are reported without blocking the rest
of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().Bool("replace", false, "Replace the profile's transactions instead of adding to them")
	cmd.Flags().String("on-duplicate", "reject", "What to do when a file was already ingested (reject, overwrite, skip)")
	cmd.Flags().Bool("ai", false, "Use the configured AI model for sign classification, categorization, and PDF fallback")

	_ = viper.BindPFlag("ingest.replace", cmd.Flags().Lookup("replace"))
	_ = viper.BindPFlag("ingest.on_duplicate", cmd.Flags().Lookup("on-duplicate"))
	_ = viper.BindPFlag("ingest.ai", cmd.Flags().Lookup("ai"))

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	opts := ingest.Options{Mode: ingest.ModeAdd}
	if viper.GetBool("ingest.replace") {
		opts.Mode = ingest.ModeReplace
	}
	switch viper.GetString("ingest.on_duplicate") {
	case "reject":
		opts.Duplicates = ingest.DuplicateReject
	case "overwrite":
		opts.Duplicates = ingest.DuplicateOverwrite
	case "skip":
		opts.Duplicates = ingest.DuplicateSkip
	default:
		return fmt.Errorf("invalid --on-duplicate value: %s", viper.GetString("ingest.on_duplicate"))
	}

	if viper.GetBool("ingest.ai") {
		capability, err := aiCapability()
		if err != nil {
			return err
		}
		if capability == nil {
			return fmt.Errorf("--ai requires an API key (set FINLENS_AI_API_KEY or ai.api_key in config)")
		}
		opts.AI = capability
	}

	var files []ingest.File
	for _, path := range args {
		data, err := os.ReadFile(path) // #nosec G304 -- user-supplied statement path
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, ingest.File{Name: filepath.Base(path), Data: data})
	}

	store, state, err := loadState(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Ingesting statements...[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
	seen := make(map[string]bool)
	opts.Progress = func(msg string) {
		// one tick per file, AI batch messages pass through as-is
		if !seen[msg] {
			seen[msg] = true
			bar.Describe(msg)
		}
		_ = bar.RenderBlank()
	}

	result, err := ingest.Run(ctx, state, files, opts)
	if err != nil {
		return err
	}
	_ = bar.Finish()

	if err := store.SaveState(ctx, result.State); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Ingested %d of %d files into profile %q (%d transactions total)",
		len(files)-len(result.FileErrors), len(files), result.State.Profile.Name, len(result.State.Transactions))))

	for _, w := range result.Warnings {
		fmt.Println(cli.FormatWarning(w))
	}
	if combined := result.CombinedFileError(); combined != nil {
		fmt.Println(cli.FormatError("Some files could not be ingested:"))
		fmt.Println(cli.SubtleStyle.Render(combined.Error()))
	}
	return nil
}
