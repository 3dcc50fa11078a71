package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/document"
	"github.com/rezonia/invoice-generator/internal/model"
)

var totalsCmd = &cobra.Command{
	Use:   "totals <invoice.json>",
	Short: "Print invoice totals and the VAT breakdown",
	Long: `Compute and print the totals of an invoice document: the price, the
tax-inclusive price, the rounding difference and the per-rate VAT breakdown.

Examples:
  invoice-generator totals invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
	inv, corr, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	if corr != nil {
		fmt.Printf("Correction of invoice %s", corr.CorrectedNumber)
		if corr.Reason != "" {
			fmt.Printf(" (%s)", corr.Reason)
		}
		fmt.Println()
	}

	fmt.Printf("Price:               %s %s\n", inv.Price(), inv.Currency)
	fmt.Printf("Price with tax:      %s %s\n", inv.PriceTax(), inv.Currency)
	fmt.Printf("Rounding difference: %s %s\n", inv.DifferenceInRounding(), inv.Currency)
	fmt.Println()

	printBreakdown(inv)
	return nil
}

func printBreakdown(inv *model.Invoice) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "RATE\tTOTAL\tTAX\tTOTAL WITH TAX")
	for _, line := range inv.VATBreakdown() {
		fmt.Fprintf(w, "%s %%\t%s\t%s\t%s\n", line.Rate, line.Total, line.Tax, line.TotalTax)
	}
}

// loadInvoice reads a JSON invoice document from a file, applying the
// global locale/currency overrides.
func loadInvoice(path string) (*model.Invoice, *model.Correction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	doc, err := document.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	inv, corr, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	if locale != "" {
		inv.Locale = locale
	}
	if currency != "" {
		inv.Currency = currency
	}

	printVerbose("loaded %s: %d items\n", path, len(inv.Items()))
	return inv, corr, nil
}
