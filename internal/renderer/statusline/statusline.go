// Package statusline provides the status line shown under the canvas.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/renderer/backend"
)

// StatusLine renders the bottom row: the active tool, the document and the
// view state, or a message when one is set.
type StatusLine struct {
	tool     string
	special  bool
	document string
	modified bool
	zoom     geom.Position
	notes    int
	selected int

	message     string
	messageType MessageType

	toolStyles map[string]backend.Style
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		tool:       "pointer",
		zoom:       geom.Position{X: 1, Y: 1},
		toolStyles: defaultToolStyles(),
	}
}

func defaultToolStyles() map[string]backend.Style {
	badge := backend.DefaultStyle().With(backend.AttrBold)
	return map[string]backend.Style{
		"pointer": badge.WithBackground(backend.ColorBlue).WithForeground(backend.ColorWhite),
		"pencil":  badge.WithBackground(backend.ColorGreen).WithForeground(backend.ColorBlack),
		"scissor": badge.WithBackground(backend.ColorRed).WithForeground(backend.ColorWhite),
		"lasso":   badge.WithBackground(backend.ColorMagenta).WithForeground(backend.ColorWhite),
	}
}

// SetTool updates the displayed tool name.
func (s *StatusLine) SetTool(tool string) {
	s.tool = tool
}

// SetSpecial shows or hides the special mode marker.
func (s *StatusLine) SetSpecial(special bool) {
	s.special = special
}

// SetDocument updates the displayed document name.
func (s *StatusLine) SetDocument(name string) {
	s.document = name
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetZoom updates the displayed zoom factors.
func (s *StatusLine) SetZoom(zoom geom.Position) {
	s.zoom = zoom
}

// SetCounts updates the note and selection counts.
func (s *StatusLine) SetCounts(notes, selected int) {
	s.notes = notes
	s.selected = selected
}

// SetMessage displays a status message in place of the status bar.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Render draws the status line on row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	width, _ := b.Size()
	if s.message != "" {
		s.renderMessage(b, row, width)
		return
	}
	s.renderStatusBar(b, row, width)
}

func (s *StatusLine) renderStatusBar(b backend.Backend, row, width int) {
	barStyle := backend.DefaultStyle().WithBackground(backend.ColorGray).WithForeground(backend.ColorWhite)
	toolStyle, ok := s.toolStyles[s.tool]
	if !ok {
		toolStyle = barStyle.With(backend.AttrBold)
	}

	for x := range width {
		b.SetCell(x, row, backend.NewStyledCell(' ', barStyle))
	}

	col := put(b, row, 0, width, " "+strings.ToUpper(s.tool)+" ", toolStyle)
	if s.special {
		col = put(b, row, col, width, " SPECIAL ", barStyle.With(backend.AttrReverse))
	}

	name := s.document
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}

	end := put(b, row, col+1, width, name, barStyle)

	// The view info is right-aligned and dropped when it would overlap.
	info := s.Info()
	if start := width - len(info) - 1; start > end {
		put(b, row, start, width, info, barStyle)
	}
}

func (s *StatusLine) renderMessage(b backend.Backend, row, width int) {
	var msgStyle backend.Style
	switch s.messageType {
	case MessageError:
		msgStyle = backend.DefaultStyle().WithForeground(backend.ColorRed).With(backend.AttrBold)
	default:
		msgStyle = backend.DefaultStyle()
	}

	for x := range width {
		b.SetCell(x, row, backend.NewStyledCell(' ', msgStyle))
	}
	put(b, row, 0, width, s.message, msgStyle)
}

// Info returns the right-hand view summary, like "zoom 1.00x1.00 | 2 notes, 1 selected".
func (s *StatusLine) Info() string {
	return fmt.Sprintf("zoom %.2fx%.2f | %d notes, %d selected", s.zoom.X, s.zoom.Y, s.notes, s.selected)
}

// put writes text from col up to limit and returns the next column.
func put(b backend.Backend, row, col, limit int, text string, style backend.Style) int {
	for _, r := range text {
		if col >= limit {
			break
		}
		b.SetCell(col, row, backend.NewStyledCell(r, style))
		col++
	}
	return col
}
