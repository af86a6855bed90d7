package tui

import (
	"strings"

	"github.com/ruminaider/reselect/internal/editor"
	"github.com/ruminaider/reselect/internal/reselect"
)

// DetailPane shows the detailed entry, which the editor updates whenever a
// row is selected.
type DetailPane struct {
	height int
}

// SetHeight sets the pane height.
func (d *DetailPane) SetHeight(h int) {
	d.height = h
}

// View renders entry, or a placeholder when nothing is detailed.
func (d DetailPane) View(entry editor.Entry, ok bool, pos reselect.Position, found bool) string {
	style := DetailPaneStyle
	if d.height > 0 {
		style = style.Height(d.height)
	}
	if !ok {
		return style.Render(DimStyle.Render("(nothing selected)"))
	}

	var b strings.Builder
	b.WriteString(DetailTitleStyle.Render(entry.Title))
	b.WriteString("\n\n")
	b.WriteString(DetailLabelStyle.Render("id  ") + shortID(entry.ID) + "\n")
	if found {
		b.WriteString(DetailLabelStyle.Render("at  ") + pos.String())
	} else {
		b.WriteString(DetailLabelStyle.Render("at  ") + DimStyle.Render("removed"))
	}
	return style.Render(b.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
