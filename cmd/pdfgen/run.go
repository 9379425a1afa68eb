package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/enerdocs/pdfgen"
	"github.com/enerdocs/pdfgen/internal/fileutil"
)

var errFixtureNotFound = errors.New("test data file not found")

// run dispatches between the one-shot CLI mode and the HTTP server.
func run(flags *cliFlags, log *zap.Logger) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	svc := pdfgen.New(
		pdfgen.WithLogger(log),
		pdfgen.WithResultsDir(cfg.ResultsDir),
		pdfgen.WithFormatDir(cfg.FormatDir),
	)

	if flags.name != "" {
		return generateOnce(flags, cfg, svc)
	}
	return serve(cfg, svc, log)
}

func loadConfig(flags *cliFlags) (*pdfgen.Config, error) {
	cfg := pdfgen.DefaultConfig()
	if flags.config != "" {
		loaded, err := pdfgen.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.addr != "" {
		cfg.ListenAddr = flags.addr
	}
	return cfg, nil
}

// generateOnce generates one document from the template's JSON fixture
// in the test data directory.
func generateOnce(flags *cliFlags, cfg *pdfgen.Config, svc *pdfgen.Service) error {
	id := pdfgen.TemplateID(flags.name)
	tplName, err := pdfgen.TemplateFileName(id)
	if err != nil {
		return err
	}

	fixture := filepath.Join(cfg.TestDataDir, tplName+".json")
	if !fileutil.FileExists(fixture) {
		return fmt.Errorf("%w: %s", errFixtureNotFound, fixture)
	}

	fmt.Printf("Loading data from %s...\n", fixture)
	req, err := loadRequest(fixture)
	if err != nil {
		return err
	}
	fmt.Println("Data loaded successfully!")

	fmt.Printf("Generating %s PDF...\n", flags.name)
	path, err := svc.Generate(context.Background(), id, req, flags.out)
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	fmt.Printf("PDF generated successfully: %s\n", path)
	return nil
}

func loadRequest(path string) (*pdfgen.Request, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- fixture path derives from the validated template name
	if err != nil {
		return nil, fmt.Errorf("reading test data: %w", err)
	}
	var req pdfgen.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing test data: %w", err)
	}
	return &req, nil
}

func serve(cfg *pdfgen.Config, svc *pdfgen.Service, log *zap.Logger) error {
	fmt.Println("Available endpoints:")
	fmt.Println("  POST /generate/welcome-letter")
	fmt.Println("  POST /generate/contract")
	fmt.Println("  POST /generate/billing-invoice")
	fmt.Println("  GET  /results/{filename}")
	fmt.Println("  GET  /health")

	log.Info("starting server", zap.String("addr", cfg.ListenAddr), zap.String("version", Version))
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           pdfgen.Handler(svc, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
