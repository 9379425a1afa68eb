package pdfgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// mergeOutcome reports how a merge call resolved, so callers can tell
// a degraded-but-successful run from a failure.
type mergeOutcome int

const (
	mergeApplied mergeOutcome = iota
	mergeSkippedNoSource
	mergeSkippedShortSource
	mergeFailed
)

// defaultMergeStart skips the format PDF's own first two pages, which
// the generated pages replace.
const defaultMergeStart = 2

// mergeTrailingPages appends sourcePath's pages from startIndex
// (0-based) onward after the generated pages in targetPath. On success
// targetPath is replaced atomically; on any failure or skip it is left
// byte-identical. Merge problems are never fatal to the caller: the
// generated pages stand on their own.
func mergeTrailingPages(sourcePath, targetPath string, startIndex int, log *zap.Logger) (mergeOutcome, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		log.Warn("format PDF not found, skipping merge", zap.String("path", sourcePath))
		return mergeSkippedNoSource, nil
	}

	conf := model.NewDefaultConfiguration()

	count, err := api.PageCountFile(sourcePath)
	if err != nil {
		log.Error("reading format PDF", zap.String("path", sourcePath), zap.Error(err))
		return mergeFailed, fmt.Errorf("reading format PDF: %w", err)
	}
	if count <= startIndex {
		log.Warn("format PDF too short, nothing to append",
			zap.String("path", sourcePath),
			zap.Int("pages", count),
			zap.Int("startIndex", startIndex))
		return mergeSkippedShortSource, nil
	}

	base := strings.TrimSuffix(targetPath, ".pdf")
	slicePath := base + "_format.pdf"
	mergedPath := base + "_merged.pdf"
	defer func() {
		_ = os.Remove(slicePath)
		_ = os.Remove(mergedPath)
	}()

	pages := []string{fmt.Sprintf("%d-%d", startIndex+1, count)}
	if err := api.TrimFile(sourcePath, slicePath, pages, conf); err != nil {
		log.Error("slicing format PDF", zap.Error(err))
		return mergeFailed, fmt.Errorf("slicing format PDF: %w", err)
	}

	if err := api.MergeCreateFile([]string{targetPath, slicePath}, mergedPath, false, conf); err != nil {
		log.Error("merging format PDF", zap.Error(err))
		return mergeFailed, fmt.Errorf("merging format PDF: %w", err)
	}

	if err := os.Rename(mergedPath, targetPath); err != nil {
		log.Error("replacing output with merged PDF", zap.Error(err))
		return mergeFailed, fmt.Errorf("replacing output: %w", err)
	}

	log.Info("appended format PDF pages", zap.Int("pages", count-startIndex))
	return mergeApplied, nil
}
