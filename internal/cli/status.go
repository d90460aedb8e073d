package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wwwyo/xatsw/internal/usecase"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show storage, current target and stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statusSvc := usecase.NewStatusService(a.fs)
			printStatus(cmd.OutOrStdout(), a.configPath, statusSvc.GetStatus(a.config))
			return nil
		},
	}
}

func printStatus(w io.Writer, configPath string, result *usecase.StatusResult) {
	fmt.Fprintf(w, "Config: %s\n", configPath)

	if result.Storage == "" {
		fmt.Fprintln(w, "Storage: (not set)")
	} else {
		fmt.Fprintf(w, "Storage: %s\n", result.Storage)
	}

	switch {
	case result.CurrentTarget == "":
		fmt.Fprintln(w, "Current target: (not set)")
	case result.TargetPath == "":
		fmt.Fprintf(w, "Current target: %s (not registered)\n", result.CurrentTarget)
	default:
		mark := "✗"
		if result.HasProfile {
			mark = "✓"
		}
		fmt.Fprintf(w, "Current target: %s %s [%s %s]\n", result.CurrentTarget, result.TargetPath, mark, usecase.ProfileFileName)
	}
	fmt.Fprintf(w, "Registered targets: %d\n", result.Targets)

	if result.Error != nil {
		fmt.Fprintf(w, "\nStorage error: %v\n", result.Error)
		return
	}
	if result.Storage == "" {
		return
	}

	fmt.Fprintf(w, "\nProfiles (%d):\n", len(result.Profiles))
	for _, name := range result.Profiles {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
