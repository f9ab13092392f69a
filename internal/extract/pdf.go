package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/parsecv/parsecv/constants"
	"github.com/parsecv/parsecv/internal/common"
)

// extractPDF runs pdftotext over the whole file and re-OCRs, page by page,
// any page whose direct extraction came back blank (scanned/image-only
// pages). Page order is preserved; a page that fails both paths contributes
// an empty string at its position.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) (Result, error) {
	path, cleanup, err := writeTemp(data, "parsecv-*.pdf")
	if err != nil {
		return Result{Format: constants.PDF}, err
	}
	defer cleanup()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Format: constants.PDF, Warnings: []string{string(errb)}},
			fmt.Errorf("%w: pdftotext: %v", common.ErrUnreadableDocument, err)
	}

	// A form-feed \f separates pages in pdftotext output.
	pages := strings.Split(strings.TrimSuffix(string(out), "\f"), "\f")
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}

	res := Result{Format: constants.PDF, Method: "pdf-text", Pages: len(pages)}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, page := range pages {
		if strings.TrimSpace(page) != "" {
			continue
		}
		i := i
		g.Go(func() error {
			if err := e.ocrSem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer e.ocrSem.Release(1)

			txt, warns, err := e.ocrPage(gctx, path, i+1)
			mu.Lock()
			defer mu.Unlock()
			res.Warnings = append(res.Warnings, warns...)
			if err != nil {
				// keep the page's empty slot; OCR failure is not fatal
				res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i+1, err))
				return nil
			}
			pages[i] = txt
			res.OCRPages++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// only context cancellation reaches here
		return res, err
	}

	if res.OCRPages > 0 {
		res.Method = "pdf-text+ocr"
	}
	res.Text = strings.Join(pages, "\n")

	e.logger.Debug("extract.pdf.done", "pages", res.Pages, "ocr_pages", res.OCRPages, "bytes", len(res.Text))
	return res, nil
}

// ocrPage rasterizes a single page and runs tesseract on it.
func (e *Extractor) ocrPage(ctx context.Context, pdfPath string, page int) (string, []string, error) {
	tmpDir, err := os.MkdirTemp("", "parsecv-pp-*")
	if err != nil {
		return "", nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("extract.pdf.tmp_cleanup_failed", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", fmt.Sprintf("%d", page), "-l", fmt.Sprintf("%d", page),
		"-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("pdftoppm: %w", err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", nil, fmt.Errorf("pdftoppm produced no image for page %d", page)
	}

	// tesseract <img> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, matches[0], "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

func writeTemp(data []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
