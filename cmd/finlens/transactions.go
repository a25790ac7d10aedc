package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "List and edit the profile's transactions",
	}
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txSetCmd())
	cmd.AddCommand(txRemoveCmd())
	return cmd
}

func txListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns := state.Transactions
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				filtered := make([]model.Transaction, 0, len(txns))
				for _, t := range txns {
					if strings.EqualFold(t.Category, category) {
						filtered = append(filtered, t)
					}
				}
				txns = filtered
			}
			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("No transactions"))
				return nil
			}

			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-5s %-10s %-36s %10s  %s", "ID", "DATE", "DESCRIPTION", "AMOUNT", "CATEGORY")))
			for _, t := range txns {
				desc := t.Description
				if len(desc) > 36 {
					desc = desc[:33] + "..."
				}
				category := t.Category
				if t.Subcategory != "" {
					category += " / " + t.Subcategory
				}
				fmt.Printf("%-5d %-10s %-36s %10.2f  %s\n", t.ID, t.Date, desc, t.Amount, category)
			}
			return nil
		},
	}
	cmd.Flags().String("category", "", "Only list this category")
	return cmd
}

func txSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Set a transaction's category or subcategory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			category, _ := cmd.Flags().GetString("category")
			subcategory, _ := cmd.Flags().GetString("subcategory")
			if category == "" && !cmd.Flags().Changed("subcategory") {
				return fmt.Errorf("nothing to change; pass --category and/or --subcategory")
			}

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if category != "" {
				canonical, ok := resolveCategory(state, category)
				if !ok {
					return fmt.Errorf("unknown category %q; see: finlens categories list", category)
				}
				category = canonical
			}

			found := false
			for i := range state.Transactions {
				if state.Transactions[i].ID != id {
					continue
				}
				found = true
				if category != "" {
					state.Transactions[i].Category = category
				}
				if cmd.Flags().Changed("subcategory") {
					state.Transactions[i].Subcategory = strings.TrimSpace(subcategory)
				}
				break
			}
			if !found {
				return fmt.Errorf("no transaction with id %d", id)
			}

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}
	cmd.Flags().String("category", "", "New category (built-in or custom)")
	cmd.Flags().String("subcategory", "", "New subcategory (empty string clears it)")
	return cmd
}

func txRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a transaction and reindex the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			kept := make([]model.Transaction, 0, len(state.Transactions))
			found := false
			for _, t := range state.Transactions {
				if t.ID == id {
					found = true
					continue
				}
				kept = append(kept, t)
			}
			if !found {
				return fmt.Errorf("no transaction with id %d", id)
			}
			state.Transactions = model.Reindex(kept)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed transaction %d", id)))
			return nil
		},
	}
}

// resolveCategory matches name against the built-in taxonomy and the
// profile's custom categories case-insensitively, returning the canonical
// spelling.
func resolveCategory(state *model.ProfileState, name string) (string, bool) {
	for _, c := range state.CategoryNames() {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}
