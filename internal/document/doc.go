// Package document owns the authoritative note list of an editing session.
//
// Document is the reducer the grid editor reports to: every flushed batch
// becomes a list of note actions applied in one step, recorded in a bounded
// undo history together with its inverse. Documents persist as YAML.
package document
