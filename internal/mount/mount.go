package mount

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/internal/retry"
	"github.com/vvka-141/cyberscape/internal/vfs"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// Options configures Mount.
type Options struct {
	// Debug logs every FUSE request.
	Debug bool
	// AllowOther lets other users read the mount.
	AllowOther bool
	// UnmountRetries is how often a busy unmount is retried before giving
	// up. Zero uses DefaultUnmountRetries, negative disables retries.
	UnmountRetries int
	Logger         cyberscape.Logger
}

// DefaultUnmountRetries covers a shell briefly holding the mount open.
const DefaultUnmountRetries = 4

func unmountExecutor(retries int, logger cyberscape.Logger) *retry.Executor {
	if retries == 0 {
		retries = DefaultUnmountRetries
	}
	if retries < 0 {
		retries = 0
	}
	return retry.NewExecutor(
		retry.NewErrnoClassifier(syscall.EBUSY, syscall.EAGAIN),
		retry.NewExponentialBackoff(retries, retry.WithInitialDelay(250*time.Millisecond)),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Info("unmount busy, retrying in %s (%d/%d): %v", delay, attempt+1, retries, err)
	})
}

// Mount exports a snapshot of world at dir and serves it until ctx is
// cancelled or the mount is removed externally. Later changes to world
// are not visible. If unmounting fails, Mount keeps serving until the
// mount is released and then returns the error.
func Mount(ctx context.Context, dir string, world *vfs.FileSystem, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create mount point: %w", cyberscape.ErrMountFailed, err)
	}

	entries := Flatten(world.Snapshot())
	root := newSnapshotRoot(entries, time.Now())

	server, err := fs.Mount(dir, root, &fs.Options{
		MountOptions: fuse.MountOptions{
			AllowOther: opts.AllowOther,
			Debug:      opts.Debug,
			FsName:     "cyberscape",
			Name:       "cyberscape",
		},
		UID: uint32(os.Getuid()),
		GID: uint32(os.Getgid()),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", cyberscape.ErrMountFailed, err)
	}
	logger.Info("mounted %d items at %s", len(entries), dir)

	return serve(ctx, server, dir, logger, unmountExecutor(opts.UnmountRetries, logger))
}

// server is the part of *fuse.Server used while serving.
type server interface {
	Wait()
	Unmount() error
}

func serve(ctx context.Context, srv server, dir string, logger cyberscape.Logger, unmount *retry.Executor) error {
	done := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		srv.Wait()
		close(done)
		return nil
	})
	eg.Go(func() error {
		select {
		case <-done:
			logger.Verbose("mount: %s unmounted externally", dir)
			return nil
		case <-ctx.Done():
		}
		logger.Info("unmounting %s", dir)
		// ctx is already done; the retries get their own lifetime.
		err := unmount.Execute(context.Background(), func(context.Context) error {
			return srv.Unmount()
		})
		if err != nil {
			logger.Error("unmount %s failed, release it with fusermount -u: %v", dir, err)
			return fmt.Errorf("%w: unmount %s: %w", cyberscape.ErrMountFailed, dir, err)
		}
		return nil
	})

	return eg.Wait()
}
