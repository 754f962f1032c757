package editor

import (
	"fmt"
	"strings"
)

// Tool selects the gesture protocol applied to pointer events.
type Tool uint8

const (
	// ToolPointer selects, moves and clones elements.
	ToolPointer Tool = iota
	// ToolPencil creates and resizes elements.
	ToolPencil
	// ToolScissor splits elements.
	ToolScissor
	// ToolLasso selects by rectangle.
	ToolLasso
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPointer:
		return "pointer"
	case ToolPencil:
		return "pencil"
	case ToolScissor:
		return "scissor"
	case ToolLasso:
		return "lasso"
	default:
		return "unknown"
	}
}

// ParseTool returns the tool with the given name (case-insensitive).
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pointer":
		return ToolPointer, nil
	case "pencil":
		return ToolPencil, nil
	case "scissor":
		return ToolScissor, nil
	case "lasso":
		return ToolLasso, nil
	}
	return ToolPointer, fmt.Errorf("unknown tool %q", name)
}

// Mode reflects whether the modifier is held.
type Mode uint8

const (
	// ModeDefault is the unmodified behaviour.
	ModeDefault Mode = iota
	// ModeSpecial appends to selections and turns moves into clones.
	ModeSpecial
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeSpecial {
		return "special"
	}
	return "default"
}

// ParseMode returns the mode with the given name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default":
		return ModeDefault, nil
	case "special":
		return ModeSpecial, nil
	}
	return ModeDefault, fmt.Errorf("unknown mode %q", name)
}

// Target is what the origin of the current gesture landed on.
type Target uint8

const (
	// TargetNone means no gesture target has been acquired.
	TargetNone Target = iota
	// TargetGrid means the origin landed on empty canvas.
	TargetGrid
	// TargetElement means the origin landed on an element.
	TargetElement
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetGrid:
		return "grid"
	case TargetElement:
		return "element"
	default:
		return "none"
	}
}
