// Package shell interprets the player's command lines against a vfs.FileSystem.
//
// A Shell turns one line of input into an Output: a list of styled lines plus
// flags asking the front end to clear the screen or exit. The Shell never
// writes to a terminal itself, so the same value drives the Bubble Tea front
// end, the line-mode fallback and the `exec` subcommand.
//
// Randomness (scan levels, parse fragments, restore outcomes, glitch choices)
// comes from a Roller so tests can fix every outcome.
package shell
