package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sangkips/till-pos/internal/application/service"
	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/pkg/apperror"
)

func newSaleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sale",
		Short: "Log in and run an interactive sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(app, cmd)
			if err != nil {
				return err
			}
			defer session.Close()
			return runSaleLoop(app, cmd, session)
		},
	}
}

const saleHelp = `Commands:
  items [category]   list catalog items (Fruits, Vegetables or All)
  add <item> <qty>   add an item to the sale
  remove <n>         remove line n from the sale
  list               show the current sale and totals
  clear              empty the sale
  checkout           complete the sale and save the receipt
  pdf <path>         export the last receipt as a PDF
  print              print the last receipt
  help               show this help
  quit               leave the till`

// runSaleLoop drives one cashier session. Every user-triggered error is
// reported and the loop continues; nothing here terminates the process.
func runSaleLoop(app *App, cmd *cobra.Command, session *service.Session) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintf(out, "Welcome: %s (%s)\n", session.Profile.FullName, session.Profile.Email)
	fmt.Fprintln(out, saleHelp)

	var lastReceipt *entity.Receipt
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "items":
			category := ""
			if len(fields) > 1 {
				category = fields[1]
			}
			products, err := app.Sales.ListProducts(ctx, category)
			if err != nil {
				reportError(out, err)
				continue
			}
			for _, p := range products {
				fmt.Fprintf(out, "  %-30s %s%6s  (%s)\n", p.Name, app.Cfg.Store.Currency, p.Price.StringFixed(2), p.Category)
			}

		case "add":
			if len(fields) < 3 {
				fmt.Fprintln(out, "Usage: add <item> <qty>")
				continue
			}
			qty, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				fmt.Fprintln(out, "Error: Please enter a valid quantity (whole number)")
				continue
			}
			name := strings.Join(fields[1:len(fields)-1], " ")
			item, err := app.Sales.AddItem(ctx, session.Ledger, name, qty)
			if err != nil {
				reportError(out, err)
				continue
			}
			fmt.Fprintf(out, "Added %-30s %3d x %s%6s = %s%7s\n",
				item.Name, item.Quantity,
				app.Cfg.Store.Currency, item.UnitPrice.StringFixed(2),
				app.Cfg.Store.Currency, item.Total.StringFixed(2))

		case "remove":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: remove <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || !app.Sales.RemoveItem(session.Ledger, n-1) {
				fmt.Fprintln(out, "Please select an item to remove")
				continue
			}
			printTotals(out, app, session.Ledger)

		case "list":
			for i, item := range session.Ledger.Items() {
				fmt.Fprintf(out, "%3d. %-30s %3d x %s%6s = %s%7s\n",
					i+1, item.Name, item.Quantity,
					app.Cfg.Store.Currency, item.UnitPrice.StringFixed(2),
					app.Cfg.Store.Currency, item.Total.StringFixed(2))
			}
			printTotals(out, app, session.Ledger)

		case "clear":
			app.Sales.Clear(session.Ledger)
			fmt.Fprintln(out, "Sale cleared")

		case "checkout":
			receipt, text, path, err := app.Receipts.Checkout(ctx, session.Ledger, session.Profile.FullName, session.Username(), time.Now())
			if text != "" {
				fmt.Fprintln(out, text)
			}
			if err != nil {
				reportError(out, err)
				continue
			}
			lastReceipt = receipt
			fmt.Fprintf(out, "Receipt saved to %s\n", path)

		case "pdf":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: pdf <path>")
				continue
			}
			if lastReceipt == nil {
				fmt.Fprintln(out, "No receipt to save; checkout first")
				continue
			}
			if err := app.Receipts.ExportPDF(lastReceipt, fields[1]); err != nil {
				reportError(out, err)
				continue
			}
			fmt.Fprintln(out, "Receipt saved successfully!")

		case "print":
			if lastReceipt == nil {
				fmt.Fprintln(out, "No receipt to print; checkout first")
				continue
			}
			if err := app.Printer.PrintReceipt(lastReceipt); err != nil {
				reportError(out, err)
				continue
			}
			fmt.Fprintln(out, "Receipt sent for printing")

		case "help":
			fmt.Fprintln(out, saleHelp)

		case "quit", "exit", "logout":
			return nil

		default:
			fmt.Fprintf(out, "Unknown command %q (try help)\n", fields[0])
		}
	}
}

func printTotals(out io.Writer, app *App, sale *entity.Sale) {
	totals := sale.Totals()
	c := app.Cfg.Store.Currency
	fmt.Fprintf(out, "Subtotal: %s%s  VAT: %s%s  Total: %s%s\n",
		c, totals.Subtotal.StringFixed(2),
		c, totals.VAT.StringFixed(2),
		c, totals.Total.StringFixed(2))
}

// reportError prints any error as a user-facing message.
func reportError(out io.Writer, err error) {
	fmt.Fprintln(out, "Error:", apperror.GetAppError(err).Message)
}
