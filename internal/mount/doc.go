// Package mount exports a read-only snapshot of a game world through FUSE.
//
// The mount point holds two directories, home/ for "~" and root/ for "/".
// Every item carries the extended attribute user.cyberscape.corrupted
// ("true" or "false") and user.cyberscape.path with its in-game path:
//
//	$ cyberscape mount /tmp/world &
//	$ getfattr -n user.cyberscape.corrupted /tmp/world/home/scripts/exploit.py
//	user.cyberscape.corrupted="true"
package mount
