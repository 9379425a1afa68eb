package pdfgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/enerdocs/pdfgen/internal/fileutil"
)

// timestampLayout yields sortable filenames with second granularity.
// Two calls in the same second for the same template can race on the
// same derived name; that matches the original service and is
// documented rather than locked.
const timestampLayout = "20060102_150405"

// Service generates paginated PDF documents from structured requests.
// A Service holds no state between calls; the filesystem is the only
// shared resource.
type Service struct {
	cfg serviceConfig
}

type serviceConfig struct {
	resultsDir string
	formatDir  string
	log        *zap.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for progress and degradation
// warnings. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.cfg.log = log }
}

// WithResultsDir overrides the directory generated files are written
// to when no explicit output path is given.
func WithResultsDir(dir string) Option {
	return func(s *Service) { s.cfg.resultsDir = dir }
}

// WithFormatDir overrides the directory holding format PDFs and
// background artwork.
func WithFormatDir(dir string) Option {
	return func(s *Service) { s.cfg.formatDir = dir }
}

// WithClock injects the time source used for derived filenames.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.cfg.now = now }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{cfg: serviceConfig{
		resultsDir: DefaultResultsDir,
		formatDir:  DefaultFormatDir,
		log:        zap.NewNop(),
		now:        time.Now,
	}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate renders the identified template for req and returns the
// path of the finished PDF. When outputPath is empty, a timestamped
// name under the results directory is derived. Pages are written to a
// temporary file and renamed into place as the last step, so a partial
// failure never leaves a corrupt file at the public path.
func (s *Service) Generate(ctx context.Context, id TemplateID, req *Request, outputPath string) (string, error) {
	tpl, err := templateFor(id)
	if err != nil {
		return "", err
	}
	if req == nil {
		req = &Request{}
	}

	if err := fileutil.EnsureDir(s.cfg.resultsDir); err != nil {
		return "", err
	}

	if outputPath == "" {
		name := fmt.Sprintf("%s_%s.pdf", tpl.name(), s.cfg.now().Format(timestampLayout))
		outputPath = filepath.Join(s.cfg.resultsDir, name)
	}
	tempPath := strings.TrimSuffix(outputPath, ".pdf") + "_temp.pdf"

	var formatPath string
	if name := tpl.formatPDF(); name != "" {
		formatPath = filepath.Join(s.cfg.formatDir, name)
	}
	hasFormat := formatPath != "" && fileutil.FileExists(formatPath)

	cv := newCanvas(s.cfg.log, s.cfg.formatDir)
	tpl.render(cv, req)
	if !hasFormat {
		tpl.staticPages(cv)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := cv.doc.OutputFileAndClose(tempPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	if hasFormat {
		// A failed merge degrades to "no merge": the generated pages
		// are published as-is.
		if _, err := mergeTrailingPages(formatPath, tempPath, defaultMergeStart, s.cfg.log); err != nil {
			s.cfg.log.Warn("continuing without format pages", zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("publishing output: %w", err)
	}

	s.cfg.log.Info("generated document",
		zap.String("template", string(id)),
		zap.String("path", outputPath))
	return outputPath, nil
}
