package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose  bool
	locale   string
	currency string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-generator",
	Short: "Compute invoice totals and render invoices (PDF and Pohoda XML)",
	Long: `Invoice Generator computes invoice financial totals (line items, per-rate
VAT breakdown, rounding) and renders the result as a printable PDF or as a
Pohoda accounting XML document.

Invoices are described by a JSON document holding the client, provider,
creator, items and payment details.

Examples:
  # Print totals and the VAT breakdown
  invoice-generator totals invoice.json

  # Render a PDF
  invoice-generator generate invoice.json -o invoice.pdf

  # Export for the Pohoda accounting system
  invoice-generator generate invoice.json --format pohoda -o invoice.xml`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Override the document locale for amount formatting (env: INVOICE_LANG)")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "Override the document currency code (env: INVOICE_CURRENCY)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if locale == "" {
		locale = os.Getenv("INVOICE_LANG")
	}
	if currency == "" {
		currency = os.Getenv("INVOICE_CURRENCY")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
