package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwwyo/xatsw/internal/target"
	"github.com/wwwyo/xatsw/internal/usecase"
)

func newSetStorageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-storage <path>",
		Short: "Set the default storage directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := target.SetStorage(a.fs, a.config, args[0])
			if err != nil {
				return err
			}
			a.config = next

			fmt.Fprintf(cmd.OutOrStdout(), "%s set as storage\n", next.Storage)
			return nil
		},
	}
}

func newListProfilesCmd(a *app) *cobra.Command {
	var storage string

	cmd := &cobra.Command{
		Use:     "list-profiles",
		Aliases: []string{"ls-profiles"},
		Short:   "List profiles in storage",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := storage
			if dir == "" {
				dir = a.config.Storage
			}

			profiles, err := usecase.ListProfiles(a.fs, dir)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
				return nil
			}

			for _, name := range profiles {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&storage, "storage", "s", "", "Storage directory (defaults to the configured storage)")

	return cmd
}
