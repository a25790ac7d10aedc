package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the profile's transactions as CSV",
		Long: `Write the current transaction set back out as CSV with the columns
Date, Description, Amount, Category. Filters narrow the export to one
category, year, or month.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	cmd.Flags().String("category", "", "Only export this category")
	cmd.Flags().Int("year", 0, "Only export this year")
	cmd.Flags().Int("month", 0, "Only export this month (1-12, requires --year)")

	_ = viper.BindPFlag("export.out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("export.category", cmd.Flags().Lookup("category"))
	_ = viper.BindPFlag("export.year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag("export.month", cmd.Flags().Lookup("month"))

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter := export.Filter{
		Category: viper.GetString("export.category"),
		Year:     viper.GetInt("export.year"),
		Month:    viper.GetInt("export.month"),
	}
	if filter.Month != 0 && filter.Year == 0 {
		return fmt.Errorf("--month requires --year")
	}

	store, state, err := loadState(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := os.Stdout
	if path := viper.GetString("export.out"); path != "" {
		f, createErr := os.Create(path) // #nosec G304 -- user-supplied output path
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", path, createErr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	n, err := export.WriteCSV(out, state.Transactions, filter)
	if err != nil {
		return err
	}

	if out != os.Stdout {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions", n)))
	}
	return nil
}
