package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for computing and rendering invoices.

The API provides endpoints for:
  - POST /api/v1/invoices/totals         - Compute totals and VAT breakdown
  - POST /api/v1/invoices/render/pdf     - Render a PDF invoice
  - POST /api/v1/invoices/render/pohoda  - Export a Pohoda XML invoice
  - GET  /health                         - Health check

Examples:
  # Start server on default port
  invoice-generator serve

  # Start on custom port in debug mode
  invoice-generator serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	return srv.Run()
}
