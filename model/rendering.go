package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellSeparator = " "

	separatorWidth = 51
)

var separatorLine = strings.Repeat("-", separatorWidth)

// TextRenderer prints grids as rows of '*' and '.' glyphs
type TextRenderer struct {
	Out io.Writer
}

// NewTextRenderer returns a renderer writing to out
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{Out: out}
}

// Display renders the grid row by row followed by the separator line
func (r *TextRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for _, row := range g.cells {
		for _, c := range row {
			w.WriteString(c.String())
			w.WriteString(cellSeparator)
		}
		w.WriteByte('\n')
	}
	w.WriteString(separatorLine)
	w.WriteByte('\n')

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// RenderString returns the text Display would write for g
func RenderString(g *Grid) string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = NewTextRenderer(&sb).Display(g)
	return sb.String()
}
