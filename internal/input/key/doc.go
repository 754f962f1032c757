// Package key parses and normalises key identifiers.
//
// A key identifier names one key press, optionally combined with modifiers:
//
//   - Single keys: "a", "1", "esc", "backspace", "spacebar", "left"
//   - Bare modifiers: "shift", "command"
//   - Combinations: "command+a", "shift+left", "alt+1", "ctrl+shift+d"
//   - Vim-style: "<C-a>", "<D-d>", "<S-Left>", "<Esc>"
//
// Every accepted spelling normalises to one canonical identifier
// (lowercase, modifiers ordered ctrl, alt, shift, command), so bindings
// written in any style match the events the terminal delivers.
package key
