package cli

import (
	"github.com/spf13/cobra"

	"github.com/wwwyo/xatsw/internal/usecase"
)

// TransferFlags holds the flags shared by load and extract.
type TransferFlags struct {
	Storage string
	Target  string
}

// AddTransferFlags adds --storage and --target flags to a command.
func AddTransferFlags(cmd *cobra.Command, flags *TransferFlags) {
	cmd.Flags().StringVarP(&flags.Storage, "storage", "s", "", "Storage directory (defaults to the configured storage)")
	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Target name or directory (defaults to the current target)")
}

// Request builds a profile request from the flags and the optional name argument.
func (f *TransferFlags) Request(args []string) usecase.ProfileRequest {
	req := usecase.ProfileRequest{
		Storage: f.Storage,
		Target:  f.Target,
	}
	if len(args) > 0 {
		req.Name = args[0]
	}
	return req
}
