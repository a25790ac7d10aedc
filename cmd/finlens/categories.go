package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List built-in categories and manage custom ones",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRemoveCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories with transaction counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			counts := make(map[string]int)
			for _, t := range state.Transactions {
				counts[t.Category]++
			}

			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-20s %-10s %s", "CATEGORY", "KIND", "TRANSACTIONS")))
			for _, c := range model.BuiltinCategories {
				fmt.Printf("%-20s %-10s %d\n", c.Name, "built-in", counts[c.Name])
			}
			for _, c := range state.CustomCategories {
				fmt.Printf("%-20s %-10s %d\n", c.Name, "custom", counts[c.Name])
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			category, ok := model.NewCustomCategory(args[0], state.CustomCategories)
			if !ok {
				return fmt.Errorf("category name %q is empty or already taken", args[0])
			}
			state.CustomCategories = append(state.CustomCategories, category)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", category.Name)))
			return nil
		},
	}
}

func categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom category; its transactions become Uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			kept := state.CustomCategories[:0]
			removed := false
			for _, c := range state.CustomCategories {
				if strings.EqualFold(c.Name, name) {
					removed = true
					continue
				}
				kept = append(kept, c)
			}
			if !removed {
				return fmt.Errorf("no custom category named %q", name)
			}
			state.CustomCategories = kept

			for i := range state.Transactions {
				if strings.EqualFold(state.Transactions[i].Category, name) {
					state.Transactions[i].Category = model.Uncategorized
				}
			}

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", name)))
			return nil
		},
	}
}
