package server

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-generator/internal/document"
	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/render/pdf"
	"github.com/rezonia/invoice-generator/internal/render/pohoda"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *pdf.Renderer
	exporter *pohoda.Generator
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		renderer: pdf.NewRenderer(),
		exporter: pohoda.NewGenerator(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/totals", s.handleTotals)
		v1.POST("/invoices/render/pdf", s.handleRenderPDF)
		v1.POST("/invoices/render/pohoda", s.handleRenderPohoda)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// bindInvoice decodes and builds the interchange document, writing the
// appropriate error response itself. A nil invoice means the response is
// already sent.
func (s *Server) bindInvoice(c *gin.Context) (*model.Invoice, *model.Correction) {
	var doc document.Invoice
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed invoice document", Details: err.Error()})
		return nil, nil
	}

	inv, corr, err := doc.Build()
	if err != nil {
		status := http.StatusUnprocessableEntity
		var verr *model.ValidationError
		var cerr *model.CoercionError
		resp := ErrorResponse{Error: err.Error()}
		switch {
		case errors.As(err, &verr):
			resp.Field = verr.Field
		case errors.As(err, &cerr):
			resp.Field = cerr.Field
		}
		c.JSON(status, resp)
		return nil, nil
	}
	return inv, corr
}

func (s *Server) handleTotals(c *gin.Context) {
	inv, corr := s.bindInvoice(c)
	if inv == nil {
		return
	}

	resp := TotalsResponse{
		Price:              inv.Price(),
		PriceTax:           inv.PriceTax(),
		RoundingDifference: inv.DifferenceInRounding(),
		Currency:           inv.Currency,
	}
	for _, line := range inv.VATBreakdown() {
		resp.Breakdown = append(resp.Breakdown, TaxLineOutput{
			Rate:     line.Rate,
			Total:    line.Total,
			TotalTax: line.TotalTax,
			Tax:      line.Tax,
		})
	}
	if corr != nil {
		resp.Correction = &CorrectionOutput{
			Number: corr.CorrectedNumber,
			Reason: corr.Reason,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRenderPDF(c *gin.Context) {
	inv, corr := s.bindInvoice(c)
	if inv == nil {
		return
	}

	var buf bytes.Buffer
	var err error
	if corr != nil {
		err = s.renderer.RenderCorrection(corr, &buf)
	} else {
		err = s.renderer.Render(inv, &buf)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render PDF", Details: err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoice.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) handleRenderPohoda(c *gin.Context) {
	inv, corr := s.bindInvoice(c)
	if inv == nil {
		return
	}

	var xmlDoc *etree.Document
	var warnings []string
	var err error
	if corr != nil {
		xmlDoc, warnings, err = s.exporter.GenerateCorrection(corr)
	} else {
		xmlDoc, warnings, err = s.exporter.Generate(inv)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to export invoice", Details: err.Error()})
		return
	}

	xmlDoc.Indent(2)
	data, err := xmlDoc.WriteToBytes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to serialize XML", Details: err.Error()})
		return
	}

	if len(warnings) > 0 {
		c.Header("X-Export-Warnings", warnings[0])
	}
	c.Data(http.StatusOK, "application/xml", data)
}
