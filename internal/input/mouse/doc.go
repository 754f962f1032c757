// Package mouse turns raw terminal mouse events into editor gestures.
//
// The terminal reports button state in character cells. Handler tracks the
// press/drag/release cycle of the primary button, converts cell positions
// into canvas-local coordinates and drives the editor's OnDown, OnMove and
// OnUp. Scroll wheel events pan the view, or zoom it with Ctrl held.
//
// Terminals never deliver a key-up for a bare modifier, so the Special mode
// the "shift" key binding toggles cannot be held from the keyboard. Instead,
// Shift held during a press switches the editor to Special mode for the
// duration of that gesture.
//
// # Coordinates
//
//	handler := mouse.NewHandler(ed, mouse.Config{
//	    CellSize: settings.MinorUnit(),
//	    Origin:   mouse.Position{X: 0, Y: 1}, // grid starts below the status line
//	})
//
// A cell maps to its centre on the canvas, so a click lands inside the
// minor-unit block drawn in that cell.
package mouse
