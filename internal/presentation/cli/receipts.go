package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReceiptsCommand(app *App) *cobra.Command {
	receipts := &cobra.Command{
		Use:   "receipts",
		Short: "Browse the receipt archive",
	}
	receipts.AddCommand(
		newReceiptsListCommand(app),
		newReceiptsViewCommand(app),
		newReceiptsDeleteCommand(app),
		newReceiptsPrintCommand(app),
	)
	return receipts
}

func newReceiptsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved receipts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Receipts.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-10s %-25s %s\n", "DATE", "TIME", "CASHIER", "TOTAL")
			for _, e := range entries {
				fmt.Fprintf(out, "%-12s %-10s %-25s %s%s\n",
					e.Date, e.Time, e.Cashier, app.Cfg.Store.Currency, e.Total.StringFixed(2))
			}
			return nil
		},
	}
}

func newReceiptsViewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <date> <time>",
		Short: "Show a saved receipt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.Receipts.View(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newReceiptsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date> <time>",
		Short: "Delete a saved receipt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Receipts.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Receipt deleted successfully")
			return nil
		},
	}
}

func newReceiptsPrintCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "print <date> <time>",
		Short: "Print a saved receipt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Printer.PrintArchived(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Receipt sent for printing")
			return nil
		},
	}
}
