package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/model"
	"github.com/glei1339/FinLens/internal/suggest"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest categories for uncategorized transactions",
		Long: `Train a classifier on the profile's already-categorized transactions and
suggest categories for the uncategorized ones. By default the suggestions
are only printed; use --apply to accept each top suggestion, or
--interactive to review them one at a time.`,
		RunE: runSuggest,
	}
	cmd.Flags().Bool("apply", false, "Apply the top suggestion to each transaction")
	cmd.Flags().BoolP("interactive", "i", false, "Review suggestions one at a time")
	return cmd
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	apply, _ := cmd.Flags().GetBool("apply")
	interactive, _ := cmd.Flags().GetBool("interactive")

	store, state, err := loadState(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	suggester, err := suggest.NewSuggester(state.Transactions)
	if errors.Is(err, suggest.ErrTooFewCategories) {
		fmt.Println(cli.FormatInfo("Not enough categorized transactions to learn from yet; categorize a few by hand first"))
		return nil
	}
	if err != nil {
		return err
	}

	suggestions := suggester.SuggestAll(state.Transactions)
	if len(suggestions) == 0 {
		fmt.Println(cli.FormatSuccess("Nothing to suggest; every transaction is categorized"))
		return nil
	}

	var choices map[int]string
	switch {
	case interactive:
		handler := cli.NewInterruptHandler(os.Stdout)
		reviewCtx := handler.HandleInterrupts(ctx)
		choices, err = cli.NewReviewer(nil, nil).ReviewSuggestions(reviewCtx, state.Transactions, suggestions)
		if err != nil {
			return err
		}
		if handler.WasInterrupted() {
			return nil
		}
	case apply:
		choices = make(map[int]string, len(suggestions))
		for id, options := range suggestions {
			choices[id] = options[0]
		}
	default:
		printSuggestions(state.Transactions, suggestions)
		return nil
	}

	if len(choices) == 0 {
		fmt.Println(cli.FormatInfo("No categories applied"))
		return nil
	}
	for i := range state.Transactions {
		if category, ok := choices[state.Transactions[i].ID]; ok {
			state.Transactions[i].Category = category
		}
	}
	if err := store.SaveState(ctx, state); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Categorized %d transactions", len(choices))))
	return nil
}

func printSuggestions(txns []model.Transaction, suggestions map[int][]string) {
	for _, t := range txns {
		options, ok := suggestions[t.ID]
		if !ok || len(options) == 0 {
			continue
		}
		fmt.Printf("%s  %s\n", cli.BoldStyle.Render(t.Description), cli.SubtleStyle.Render(fmt.Sprintf("%s  %.2f", t.Date, t.Amount)))
		fmt.Printf("  %s\n", strings.Join(options, ", "))
	}
	fmt.Println(cli.FormatInfo("Run again with --apply or --interactive to accept suggestions"))
}
