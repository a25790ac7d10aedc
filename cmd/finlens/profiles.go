package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/glei1339/FinLens/internal/cli"
	"github.com/glei1339/FinLens/internal/model"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage profiles (separate transaction workspaces)",
	}
	cmd.AddCommand(profilesListCmd())
	cmd.AddCommand(profilesCreateCmd())
	cmd.AddCommand(profilesRenameCmd())
	cmd.AddCommand(profilesDeleteCmd())
	return cmd
}

func profilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profiles, err := store.ListProfiles(ctx)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println(cli.FormatInfo("No profiles yet; one is created on first use"))
				return nil
			}
			for _, p := range profiles {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
				fmt.Printf("%s %s\n", swatch, p.Name)
			}
			return nil
		},
	}
}

func profilesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profiles, err := store.ListProfiles(ctx)
			if err != nil {
				return err
			}
			profile := model.NewProfile(args[0], len(profiles))
			if err := store.CreateProfile(ctx, profile); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created profile %q", profile.Name)))
			return nil
		},
	}
}

func profilesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.FindProfileByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := store.RenameProfile(ctx, profile.ID, args[1]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed %q to %q", args[0], args[1])))
			return nil
		},
	}
}

func profilesDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile and all of its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			force, _ := cmd.Flags().GetBool("force")

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.FindProfileByName(ctx, args[0])
			if err != nil {
				return err
			}
			if !force {
				state, err := store.LoadState(ctx, profile.ID)
				if err != nil {
					return err
				}
				if len(state.Transactions) > 0 {
					return fmt.Errorf("profile %q has %d transactions; use --force to delete anyway",
						profile.Name, len(state.Transactions))
				}
			}
			if err := store.DeleteProfile(ctx, profile.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted profile %q", profile.Name)))
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Delete even if the profile has transactions")
	return cmd
}
