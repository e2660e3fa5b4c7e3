package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it.
func Execute() {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	root := NewRootCommand(app)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand assembles the till command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "till",
		Short:         "Supermarket till point of sale",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newSaleCommand(app),
		newReceiptsCommand(app),
		newUsersCommand(app),
		newProfileCommand(app),
		newStatusCommand(app),
	)
	return root
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show till configuration and printer status",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Store:        %s\n", app.Cfg.Store.Name)
			fmt.Fprintf(out, "VAT rate:     %s\n", app.Cfg.Store.VATRate)
			fmt.Fprintf(out, "Users file:   %s\n", app.Cfg.Storage.UsersFile)
			fmt.Fprintf(out, "Receipts dir: %s\n", app.Cfg.Storage.ReceiptsDir)

			status := app.Printer.GetStatus()
			fmt.Fprintf(out, "Printer:      %s (configured=%t connected=%t)\n",
				status.Type, status.Configured, status.Connected)
			return nil
		},
	}
}
