package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwwyo/xatsw/internal/usecase"
)

func newLoadCmd(a *app) *cobra.Command {
	var flags TransferFlags
	var yes bool

	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Save the target's profile into storage",
		Long: `Copy the target's chat.sol into the storage directory under the given name.

If no name is given you will be asked for a new one. An existing profile in
storage is only replaced after confirmation, unless --yes is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveSvc := usecase.NewResolveService(a.fs, a.prompter)
			resolved, err := resolveSvc.Resolve(cmd.Context(), a.config, flags.Request(args))
			if err != nil {
				return err
			}

			transferSvc := usecase.NewTransferService(a.fs, a.prompter)
			if err := transferSvc.Load(cmd.Context(), resolved, usecase.TransferOptions{Force: yes}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Loaded %s into %s\n", resolved.InTarget, resolved.InStorage)
			return nil
		},
	}

	AddTransferFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an existing profile without asking")

	return cmd
}

func newExtractCmd(a *app) *cobra.Command {
	var flags TransferFlags

	cmd := &cobra.Command{
		Use:   "extract [name]",
		Short: "Put a stored profile into the target",
		Long: `Copy the named profile from the storage directory over the target's chat.sol.

The target's current profile is replaced without confirmation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveSvc := usecase.NewResolveService(a.fs, a.prompter)
			resolved, err := resolveSvc.Resolve(cmd.Context(), a.config, flags.Request(args))
			if err != nil {
				return err
			}

			transferSvc := usecase.NewTransferService(a.fs, a.prompter)
			if err := transferSvc.Extract(cmd.Context(), resolved); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Extracted %s into %s\n", resolved.InStorage, resolved.InTarget)
			return nil
		},
	}

	AddTransferFlags(cmd, &flags)

	return cmd
}
