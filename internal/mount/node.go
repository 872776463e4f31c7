package mount

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// Extended attributes exposed on every item.
const (
	XattrCorrupted = "user.cyberscape.corrupted"
	XattrPath      = "user.cyberscape.path"
)

var xattrNames = []string{XattrCorrupted, XattrPath}

// worldNode is a file or directory of the exported snapshot.
type worldNode struct {
	fs.Inode

	entry   Entry
	modTime time.Time
}

var _ fs.InodeEmbedder = (*worldNode)(nil)
var _ fs.NodeGetattrer = (*worldNode)(nil)
var _ fs.NodeOpener = (*worldNode)(nil)
var _ fs.NodeReader = (*worldNode)(nil)
var _ fs.NodeGetxattrer = (*worldNode)(nil)
var _ fs.NodeListxattrer = (*worldNode)(nil)

func (n *worldNode) mode() uint32 {
	if n.entry.Dir {
		return 0555 | syscall.S_IFDIR
	}
	return 0444 | syscall.S_IFREG
}

// Getattr returns read-only attributes stamped with the snapshot time.
func (n *worldNode) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = n.mode()
	out.Size = uint64(len(n.entry.Content))
	out.Mtime = uint64(n.modTime.Unix())
	out.Atime = out.Mtime
	out.Ctime = out.Mtime
	out.Uid = uint32(os.Getuid())
	out.Gid = uint32(os.Getgid())
	return 0
}

// Open refuses writes; the snapshot never changes.
func (n *worldNode) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	if n.entry.Dir {
		return nil, 0, syscall.EISDIR
	}
	if flags&(syscall.O_WRONLY|syscall.O_RDWR) != 0 {
		return nil, 0, syscall.EROFS
	}
	return nil, fuse.FOPEN_KEEP_CACHE, 0
}

func (n *worldNode) Read(ctx context.Context, fh fs.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	data := n.entry.Content
	if off >= int64(len(data)) {
		return fuse.ReadResultData(nil), 0
	}
	end := off + int64(len(dest))
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return fuse.ReadResultData(data[off:end]), 0
}

func (n *worldNode) xattr(attr string) (string, bool) {
	switch attr {
	case XattrCorrupted:
		if n.entry.Corrupted {
			return "true", true
		}
		return "false", true
	case XattrPath:
		return n.entry.GamePath, true
	}
	return "", false
}

// Getxattr returns extended attribute value.
func (n *worldNode) Getxattr(ctx context.Context, attr string, dest []byte) (uint32, syscall.Errno) {
	value, ok := n.xattr(attr)
	if !ok {
		return 0, syscall.ENODATA
	}
	return copyXattr(dest, []byte(value))
}

// Listxattr lists extended attributes.
func (n *worldNode) Listxattr(ctx context.Context, dest []byte) (uint32, syscall.Errno) {
	var list []byte
	for _, name := range xattrNames {
		list = append(list, name...)
		list = append(list, 0)
	}
	return copyXattr(dest, list)
}

// copyXattr follows the getxattr(2) protocol: an empty dest asks for the
// size only.
func copyXattr(dest, value []byte) (uint32, syscall.Errno) {
	if len(dest) == 0 {
		return uint32(len(value)), 0
	}
	if len(dest) < len(value) {
		return 0, syscall.ERANGE
	}
	copy(dest, value)
	return uint32(len(value)), 0
}

// snapshotRoot is the mount point directory. It builds the whole tree
// once, when the kernel first sees it.
type snapshotRoot struct {
	fs.Inode

	entries []Entry
	modTime time.Time
}

var _ fs.NodeOnAdder = (*snapshotRoot)(nil)
var _ fs.NodeGetattrer = (*snapshotRoot)(nil)

func newSnapshotRoot(entries []Entry, modTime time.Time) *snapshotRoot {
	return &snapshotRoot{entries: entries, modTime: modTime}
}

// OnAdd creates one persistent inode per entry. Entries arrive parents
// first, so every parent exists when its children are added.
func (r *snapshotRoot) OnAdd(ctx context.Context) {
	dirs := map[string]*fs.Inode{"": &r.Inode}
	for _, e := range r.entries {
		parent, ok := dirs[e.Parent()]
		if !ok {
			continue
		}
		node := &worldNode{entry: e, modTime: r.modTime}
		child := parent.NewPersistentInode(ctx, node, fs.StableAttr{Mode: node.mode() &^ 07777})
		parent.AddChild(e.Name(), child, false)
		if e.Dir {
			dirs[e.Path] = child
		}
	}
}

func (r *snapshotRoot) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = 0555 | syscall.S_IFDIR
	out.Mtime = uint64(r.modTime.Unix())
	out.Atime = out.Mtime
	out.Ctime = out.Mtime
	out.Uid = uint32(os.Getuid())
	out.Gid = uint32(os.Getgid())
	return 0
}
