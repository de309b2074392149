package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// Bundle file names.
const (
	BundleIndex = "index.html"
	BundleCSS   = "responsive.css"
	BundleSVG   = "breakpoints.svg"
	BundlePNG   = "breakpoints.png"
)

// WriteBundle compiles cfg and writes a previewable site into dir. The files
// are independent, so they are written concurrently.
func WriteBundle(dir string, cfg responsive.Config, title string) error {
	queries, err := responsive.Compile(cfg.Breakpoints, cfg.WidthUnits, cfg.BaseFontSize)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return writeFile(filepath.Join(dir, BundleIndex), IndexHTML(cfg.Breakpoints, ""))
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, BundleCSS), Stylesheet(queries, ""))
	})
	g.Go(func() error {
		return SaveBreakpointMap(MapOptions{Path: filepath.Join(dir, BundleSVG), Title: title, Queries: queries})
	})
	g.Go(func() error {
		return SaveBreakpointMap(MapOptions{Path: filepath.Join(dir, BundlePNG), Title: title, Queries: queries})
	})
	return g.Wait()
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
