// Package vfs implements the in-memory game world: a two-rooted tree of
// directories and files, a cursor for the current working directory and a
// side set of paths flagged as corrupted.
//
// # Paths
//
// A resolved Path is a slice of names whose head is HomeToken ("~") or
// RootToken ("root", displayed as "/"). ResolvePath turns what the player
// typed into a Path without touching the tree:
//
//	""          -> current directory
//	"/"         -> [root]
//	"~"         -> [~]
//	"/var/log"  -> [root var log]        (absolute, taken verbatim)
//	"~/scripts" -> [~ scripts]           (home-anchored, taken verbatim)
//	"../etc"    -> cwd minus one, + etc  (relative, "." and ".." applied)
//
// Absolute and home-anchored paths are not normalised: "/var/../etc" looks up
// a child literally named "..". Relative ".." never climbs above a root.
//
// # Error styles
//
// Lookups (Lookup, NodeAt, List, ReadContent, IsCorrupted,
// CountCorruptedInDir) never fail; absence is reported as nil, false or 0.
// Mutators (ChangeDir, MakeDir, Touch, Remove, Move, Copy, WriteFile,
// MarkCorrupted) return a message and an error. A non-nil error is an
// *OpError whose text is ready to show to the player and which wraps one of
// the sentinel errors for errors.Is.
//
// # Corruption
//
// Corruption is metadata only; it never changes file content. Flags follow
// their item: Move and Copy carry them to the destination, Remove drops them
// for the item and everything below it.
//
// # Thread Safety
//
// A FileSystem is not safe for concurrent use. Each game session owns one.
// Use Snapshot to hand an independent copy to another goroutine.
package vfs
