package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/ingest"
	"github.com/glei1339/FinLens/internal/model"
)

func filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage the profile's ingested statement files",
	}
	cmd.AddCommand(filesListCmd())
	cmd.AddCommand(filesRemoveCmd())
	cmd.AddCommand(filesRereadCmd())
	return cmd
}

func filesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ingested files with row counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(state.Files) == 0 {
				fmt.Println(cli.FormatInfo("No files ingested"))
				return nil
			}

			counts := make(map[string]int)
			for _, t := range state.Transactions {
				counts[t.Source]++
			}
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-40s %-6s %s", "FILE", "KIND", "TRANSACTIONS")))
			for _, f := range state.Files {
				fmt.Printf("%-40s %-6s %d\n", f.Name, f.Kind, counts[f.Name])
			}
			return nil
		},
	}
}

func filesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a file and all transactions that came from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !state.HasFile(name) {
				return fmt.Errorf("no ingested file named %q", name)
			}

			kept := state.Files[:0]
			for _, f := range state.Files {
				if f.Name != name {
					kept = append(kept, f)
				}
			}
			state.Files = kept
			state.Transactions = model.RemoveBySource(state.Transactions, name)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s", name)))
			return nil
		},
	}
}

func filesRereadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reread",
		Short: "Re-derive all transactions from the stored file contents",
		Long: `Re-run the full ingestion pipeline over every stored file. Useful after
a rule or categorizer change, or to pick up parser improvements, without
needing the original files on disk.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(state.Files) == 0 {
				return fmt.Errorf("no stored files to re-read")
			}

			var files []ingest.File
			for _, f := range state.Files {
				files = append(files, ingest.File{Name: f.Name, Data: f.Content})
			}

			opts := ingest.Options{Mode: ingest.ModeReplace}
			if useAI, _ := cmd.Flags().GetBool("ai"); useAI {
				capability, aiErr := aiCapability()
				if aiErr != nil {
					return aiErr
				}
				if capability == nil {
					return fmt.Errorf("--ai requires an API key (set FINLENS_AI_API_KEY or ai.api_key in config)")
				}
				opts.AI = capability
			}

			result, err := ingest.Run(ctx, state, files, opts)
			if err != nil {
				return err
			}
			if err := store.SaveState(ctx, result.State); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Re-read %d files (%d transactions)",
				len(files)-len(result.FileErrors), len(result.State.Transactions))))
			for _, w := range result.Warnings {
				fmt.Println(cli.FormatWarning(w))
			}
			if combined := result.CombinedFileError(); combined != nil {
				fmt.Println(cli.FormatError("Some files could not be re-read:"))
				fmt.Println(cli.SubtleStyle.Render(combined.Error()))
			}
			return nil
		},
	}
	cmd.Flags().Bool("ai", false, "Use the configured AI model during the re-read")
	return cmd
}
