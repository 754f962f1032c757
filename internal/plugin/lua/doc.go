// Package lua runs user scripts that drive the grid editor.
//
// A script is a Lua file loaded into a sandboxed State. Global functions in
// the script can be bound to keys through the "lua:" action prefix:
//
//	[keys]
//	"ctrl+q" = "lua:quantize"
//
// Each bound function is called with an editor module for the key event:
//
//	function quantize(editor)
//	    local w, h = editor.minor_unit()
//	    editor.move_selection(w, 0)
//	end
//
// A function named "<name>_up" next to "<name>" makes the binding react to key
// release as well.
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile and load are removed, and require only accepts the whitelisted
// built-in modules. Every call runs under a deadline so a runaway script
// cannot stall the event loop.
package lua
