package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// MapOptions configures SaveBreakpointMap.
type MapOptions struct {
	Path    string
	Format  string // "svg" or "png"; inferred from Path when empty
	Title   string
	Queries []responsive.Query
}

// SaveBreakpointMap writes a picture of the width axis partitioned by the
// compiled queries.
func SaveBreakpointMap(opts MapOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported map format %q (want svg or png)", format)
	}
	if len(opts.Queries) == 0 {
		return fmt.Errorf("no queries to draw")
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	defer f.Close()

	if format == "svg" {
		err = RenderSVG(f, opts.Title, opts.Queries)
	} else {
		err = RenderPNG(f, opts.Title, opts.Queries)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// RenderSVG draws the breakpoint map as SVG.
func RenderSVG(w io.Writer, title string, queries []responsive.Query) error {
	canvas := svg.New(w)
	canvas.Start(MapWidth, MapHeight)
	canvas.Rect(0, 0, MapWidth, MapHeight, "fill:#282A36")
	if title != "" {
		canvas.Text(mapMargin, 24, title, "fill:#F8F8F2;font-family:monospace;font-size:14px")
	}
	for _, s := range layoutSegments(queries, MapWidth) {
		canvas.Rect(s.X0, mapBarTop, max(s.X1-s.X0, 1), mapBarHeight,
			fmt.Sprintf("fill:%s;stroke:#282A36;stroke-width:2", hex(s.Color)))
		canvas.Text(s.X0+4, mapBarTop+20, s.Name, "fill:#1E1F29;font-family:monospace;font-size:12px;font-weight:bold")
		canvas.Text(s.X0+4, mapBarTop+38, s.Range, "fill:#1E1F29;font-family:monospace;font-size:10px")
		canvas.Text(s.X0+4, mapBarTop+mapBarHeight+18, s.Media, "fill:#BFBFBF;font-family:monospace;font-size:9px")
	}
	canvas.End()
	return nil
}

// RenderPNG draws the breakpoint map as PNG.
func RenderPNG(w io.Writer, title string, queries []responsive.Query) error {
	dc := gg.NewContext(MapWidth, MapHeight)
	dc.SetColor(color.RGBA{0x28, 0x2A, 0x36, 0xFF})
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if title != "" {
		dc.SetColor(color.RGBA{0xF8, 0xF8, 0xF2, 0xFF})
		dc.DrawString(title, mapMargin, 24)
	}
	for _, s := range layoutSegments(queries, MapWidth) {
		dc.SetColor(s.Color)
		dc.DrawRectangle(float64(s.X0), mapBarTop, float64(max(s.X1-s.X0, 1)), mapBarHeight)
		dc.Fill()

		dc.SetColor(color.RGBA{0x1E, 0x1F, 0x29, 0xFF})
		dc.DrawString(s.Name, float64(s.X0+4), mapBarTop+20)
		dc.DrawString(s.Range, float64(s.X0+4), mapBarTop+38)

		dc.SetColor(color.RGBA{0xBF, 0xBF, 0xBF, 0xFF})
		dc.DrawString(s.Media, float64(s.X0+4), mapBarTop+mapBarHeight+18)
	}
	return dc.EncodePNG(w)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
