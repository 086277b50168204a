package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-stepper/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	RenderCSV    = "csv"
	RenderBlocks = "blocks"
)

// ErrUnknownRenderer is returned by NewRenderer for an unsupported style
var ErrUnknownRenderer = errors.New("unknown render style")

// Renderer writes one generation of a grid
type Renderer interface {
	Render(w io.Writer, g *Grid) error
}

// NewRenderer returns the renderer for style
func NewRenderer(style string) (Renderer, error) {
	switch style {
	case RenderCSV, "":
		return CSVRenderer{}, nil
	case RenderBlocks:
		return BlockRenderer{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownRenderer, "[NewRenderer] %q", style)
}

// CSVRenderer writes every cell as 0 or 1 followed by a comma, one row per line
type CSVRenderer struct{}

// Render renders the grid as comma separated rows
func (CSVRenderer) Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for r := range g.rows {
		for c := range g.cols {
			bw.WriteString(g.cells[r][c].String())
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[CSVRenderer.Render]")
}

// BlockRenderer implements basic terminal rendering
type BlockRenderer struct{}

// Render draws live cells as blocks
func (BlockRenderer) Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == rules.Live {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[BlockRenderer.Render]")
}
