package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwwyo/xatsw/internal/target"
)

func newListTargetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-target",
		Aliases: []string{"ls-target"},
		Short:   "List registered targets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := target.List(a.config)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No targets found")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.Name, e.Path)
			}
			return nil
		},
	}
}

func newSetTargetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-target <name>",
		Short: "Set the default target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := target.SetCurrent(a.config, args[0])
			if err != nil {
				return err
			}
			a.config = next

			fmt.Fprintf(cmd.OutOrStdout(), "%s set as current target\n", args[0])
			return nil
		},
	}
}

func newAddTargetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "add-target <name> <path>",
		Short: "Register a target directory",
		Long: `Register a directory under a name. The path is stored in absolute form.

Replacing an existing name asks for confirmation, unless --yes is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := target.Add(a.fs, a.confirmer(yes), a.config, args[0], args[1])
			if err != nil {
				return err
			}
			a.config = next

			path, _ := next.TargetPath(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s added to target list\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace an existing target without asking")

	return cmd
}

func newRemoveTargetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-target <name>",
		Aliases: []string{"rm-target"},
		Short:   "Unregister a target",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := a.config.TargetPath(name); !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Target %s is not registered\n", name)
				return nil
			}

			a.config = target.Remove(a.config, name)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed target %s\n", name)
			return nil
		},
	}
}
