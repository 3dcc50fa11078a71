package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/render/pdf"
	"github.com/rezonia/invoice-generator/internal/render/pohoda"
)

var (
	generateOutput string
	generateFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Render an invoice document",
	Long: `Render an invoice document into a printable PDF or a Pohoda accounting
XML export.

Examples:
  invoice-generator generate invoice.json -o invoice.pdf
  invoice-generator generate invoice.json --format pohoda -o invoice.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "invoice.pdf", "Output file")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "pdf", "Output format (pdf, pohoda)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inv, corr, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	// Render fully in memory before touching the output path, so a failed
	// render never leaves a truncated file behind.
	var buf bytes.Buffer
	switch generateFormat {
	case "pdf":
		renderer := pdf.NewRenderer()
		if corr != nil {
			err = renderer.RenderCorrection(corr, &buf)
		} else {
			err = renderer.Render(inv, &buf)
		}
	case "pohoda":
		gen := pohoda.NewGenerator()
		if corr != nil {
			doc, warnings, genErr := gen.GenerateCorrection(corr)
			if genErr != nil {
				err = genErr
				break
			}
			reportWarnings(warnings)
			doc.Indent(2)
			_, err = doc.WriteTo(&buf)
		} else {
			doc, warnings, genErr := gen.Generate(inv)
			if genErr != nil {
				err = genErr
				break
			}
			reportWarnings(warnings)
			doc.Indent(2)
			_, err = doc.WriteTo(&buf)
		}
	default:
		return fmt.Errorf("unsupported format %q (expected pdf or pohoda)", generateFormat)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(generateOutput, buf.Bytes(), 0o644); err != nil {
		return err
	}

	printVerbose("wrote %s\n", generateOutput)
	return nil
}

func reportWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
