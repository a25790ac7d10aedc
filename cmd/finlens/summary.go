package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/dates"
	"github.com/glei1339/FinLens/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income/expense totals per year, or a category breakdown for one year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(state.Transactions) == 0 {
				fmt.Println(cli.FormatInfo("No transactions yet; ingest a statement first"))
				return nil
			}

			if year, _ := cmd.Flags().GetInt("year"); year != 0 {
				printYearBreakdown(state.Transactions, year)
				return nil
			}
			printYearTotals(state.Transactions)
			return nil
		},
	}
	cmd.Flags().Int("year", 0, "Break down one year by category")
	return cmd
}

func printYearTotals(txns []model.Transaction) {
	fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-6s %12s %12s %12s", "YEAR", "INCOME", "EXPENSES", "NET")))
	for _, year := range dates.UniqueYears(txns) {
		var income, expenses float64
		for _, t := range dates.FilterByYear(txns, year) {
			if t.Amount > 0 {
				income += t.Amount
			} else {
				expenses += -t.Amount
			}
		}
		fmt.Printf("%-6d %12.2f %12.2f %12.2f\n", year, income, expenses, income-expenses)
	}
}

func printYearBreakdown(txns []model.Transaction, year int) {
	inYear := dates.FilterByYear(txns, year)
	if len(inYear) == 0 {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("No transactions in %d", year)))
		return
	}

	spent := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range inYear {
		if t.Amount < 0 {
			spent[t.Category] += -t.Amount
			counts[t.Category]++
		}
	}

	names := make([]string, 0, len(spent))
	for name := range spent {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return spent[names[i]] > spent[names[j]] })

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending in %d", year)))
	fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-20s %12s %6s", "CATEGORY", "SPENT", "ROWS")))
	var total float64
	for _, name := range names {
		fmt.Printf("%-20s %12.2f %6d\n", name, spent[name], counts[name])
		total += spent[name]
	}
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("%-20s %12.2f", "Total", total)))
}
