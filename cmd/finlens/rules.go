package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/glei1339/FinLens/internal/categorize"
	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage the profile's category override rules",
		Long: `Rules override automatic categorization: the first rule whose text
appears in a transaction's description (case-insensitive) wins. Rules are
re-applied to the whole transaction set whenever they change.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesRemoveCmd())
	cmd.AddCommand(rulesExportCmd())
	cmd.AddCommand(rulesImportCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(state.Rules) == 0 {
				fmt.Println(cli.FormatInfo("No rules defined"))
				return nil
			}
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-4s %-30s %s", "#", "MATCH TEXT", "CATEGORY")))
			for i, r := range state.Rules {
				fmt.Printf("%-4d %-30s %s\n", i+1, r.Text, r.Category)
			}
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text> <category>",
		Short: "Add a rule and re-apply all rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.TrimSpace(args[0])
			category := strings.TrimSpace(args[1])
			if text == "" || category == "" {
				return fmt.Errorf("rule text and category must be non-empty")
			}

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			state.Rules = append(state.Rules, model.Rule{
				ID:       uuid.NewString(),
				Text:     text,
				Category: category,
			})
			state.Transactions = categorize.ApplyUserRules(state.Transactions, state.Rules)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added rule %q -> %s", text, category)))
			return nil
		},
	}
}

func rulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <text>",
		Short: "Remove the rule with the given match text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.TrimSpace(args[0])

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			kept := state.Rules[:0]
			removed := 0
			for _, r := range state.Rules {
				if strings.EqualFold(r.Text, text) {
					removed++
					continue
				}
				kept = append(kept, r)
			}
			if removed == 0 {
				return fmt.Errorf("no rule with text %q", text)
			}
			state.Rules = kept

			// Re-derive categories so rows the removed rule had claimed fall
			// back to the remaining rules or the automatic category.
			state.Transactions = recategorize(state)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %d rule(s)", removed)))
			return nil
		},
	}
}

// recategorize clears every category, runs the keyword engine, then the
// rule overlay. Used after destructive rule edits.
func recategorize(state *model.ProfileState) []model.Transaction {
	txns := append([]model.Transaction(nil), state.Transactions...)
	for i := range txns {
		txns[i].Category = ""
	}
	txns = categorize.CategorizeAll(txns)
	return categorize.ApplyUserRules(txns, state.Rules)
}

// ruleFile is the YAML shape for rules import/export.
type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

func rulesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile's rules as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, state, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			doc := ruleFile{}
			for _, r := range state.Rules {
				doc.Rules = append(doc.Rules, ruleEntry{Text: r.Text, Category: r.Category})
			}
			data, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal rules: %w", err)
			}

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("out"); path != "" {
				f, createErr := os.Create(path) // #nosec G304 -- user-supplied output path
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", path, createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	return cmd
}

func rulesImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load rules from YAML and re-apply them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied rules path
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var doc ruleFile
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			store, state, err := loadState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			replace, _ := cmd.Flags().GetBool("replace")
			if replace {
				state.Rules = nil
			}
			added := 0
			for _, e := range doc.Rules {
				text := strings.TrimSpace(e.Text)
				category := strings.TrimSpace(e.Category)
				if text == "" || category == "" {
					continue
				}
				state.Rules = append(state.Rules, model.Rule{
					ID:       uuid.NewString(),
					Text:     text,
					Category: category,
				})
				added++
			}
			state.Transactions = recategorize(state)

			if err := store.SaveState(ctx, state); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d rule(s)", added)))
			return nil
		},
	}
	cmd.Flags().Bool("replace", false, "Replace existing rules instead of appending")
	return cmd
}
