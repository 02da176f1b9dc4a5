// Package grid renders computed timetable rows as a PNG image: a title bar,
// a header row of reference hours, one row per location with its local
// times in classification-colored cells.
package grid

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/codeGROOVE-dev/tzgrid/pkg/timetable"
)

// Palette maps each classification bucket to a cell fill color.
type Palette struct {
	EarlyLate color.RGBA
	Noon      color.RGBA
	Normal    color.RGBA
}

// Fixed grid geometry, matching one 40px row per location and one 100px
// column per sampled hour.
const (
	labelColumnWidth = 200
	cellWidth        = 100
	cellHeight       = 40
	titleHeight      = 50
	padding          = 10
	fontSize         = 12
	titleFontSize    = 16
)

// Grid draws timetables with a fixed geometry and palette. Fonts are
// embedded, so rendering needs nothing from the host system.
type Grid struct {
	palette   Palette
	face      font.Face
	titleFace font.Face
}

// New builds a renderer with the given palette.
func New(palette Palette) (*Grid, error) {
	face, err := newFace(goregular.TTF, fontSize)
	if err != nil {
		return nil, fmt.Errorf("loading cell font: %w", err)
	}
	titleFace, err := newFace(gobold.TTF, titleFontSize)
	if err != nil {
		return nil, fmt.Errorf("loading title font: %w", err)
	}
	return &Grid{palette: palette, face: face, titleFace: titleFace}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Render draws the grid and writes it to path as a PNG, creating parent
// directories as needed. Every row must carry the same number of periods as
// there are header labels.
func (g *Grid) Render(rows []timetable.Row, header []string, title, path string) error {
	if len(rows) == 0 {
		return errors.New("no rows to draw")
	}
	columns := len(header)
	for _, row := range rows {
		if len(row.Periods) != columns {
			return fmt.Errorf("row %q has %d periods, header has %d", row.Label, len(row.Periods), columns)
		}
	}

	width := labelColumnWidth + columns*cellWidth
	height := titleHeight + (len(rows)+1)*cellHeight

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	g.drawTitle(dc, title, width)
	g.drawHeader(dc, header)
	for i, row := range rows {
		g.drawRow(dc, i, row)
	}
	g.drawLines(dc, len(rows), columns)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving image to %s: %w", path, err)
	}
	return nil
}

func (g *Grid) drawTitle(dc *gg.Context, title string, width int) {
	dc.SetColor(namedColors["yellow"])
	dc.DrawRectangle(0, 0, float64(width), titleHeight)
	dc.Fill()

	dc.SetFontFace(g.titleFace)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(title, float64(width)/2, titleHeight/2.0, 0.5, 0.5)
}

func (g *Grid) drawHeader(dc *gg.Context, header []string) {
	dc.SetColor(color.Black)
	dc.DrawRectangle(labelColumnWidth, titleHeight, float64(len(header)*cellWidth), cellHeight)
	dc.Fill()

	dc.SetFontFace(g.face)
	dc.SetColor(color.White)
	for col, label := range header {
		x := float64(labelColumnWidth + col*cellWidth + cellWidth/2)
		dc.DrawStringAnchored(label, x, titleHeight+cellHeight/2.0, 0.5, 0.5)
	}
}

func (g *Grid) drawRow(dc *gg.Context, index int, row timetable.Row) {
	y := float64(titleHeight + (index+1)*cellHeight)

	dc.SetColor(color.Black)
	dc.DrawRectangle(0, y, labelColumnWidth, cellHeight)
	dc.Fill()

	dc.SetFontFace(g.face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(row.Label, padding, y+cellHeight/2.0, 0, 0.5)

	for col, period := range row.Periods {
		x := float64(labelColumnWidth + col*cellWidth)

		dc.SetColor(g.fill(period.Class))
		dc.DrawRectangle(x, y, cellWidth, cellHeight)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(period.Label(), x+cellWidth/2.0, y+cellHeight/2.0, 0.5, 0.5)
	}
}

func (g *Grid) drawLines(dc *gg.Context, rows, columns int) {
	totalWidth := float64(labelColumnWidth + columns*cellWidth)
	totalHeight := float64(titleHeight + (rows+1)*cellHeight)

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)

	for row := 0; row <= rows+1; row++ {
		y := float64(titleHeight + row*cellHeight)
		dc.DrawLine(0, y, totalWidth, y)
	}

	dc.DrawLine(0, titleHeight, 0, totalHeight)
	dc.DrawLine(labelColumnWidth, titleHeight, labelColumnWidth, totalHeight)
	for col := 0; col <= columns; col++ {
		x := float64(labelColumnWidth + col*cellWidth)
		dc.DrawLine(x, titleHeight, x, totalHeight)
	}
	dc.Stroke()
}

func (g *Grid) fill(c timetable.Classification) color.RGBA {
	switch c {
	case timetable.EarlyLate:
		return g.palette.EarlyLate
	case timetable.Noon:
		return g.palette.Noon
	case timetable.Normal:
		return g.palette.Normal
	default:
		return g.palette.Normal
	}
}
