// Package retry re-runs operations that fail with transient errors, waiting
// with exponential backoff between attempts.
//
// The mount package uses it to unmount a FUSE export that is still busy,
// for example because a terminal has its working directory inside it:
//
//	executor := retry.NewExecutor(
//	    retry.NewErrnoClassifier(syscall.EBUSY),
//	    retry.NewExponentialBackoff(4, retry.WithInitialDelay(250*time.Millisecond)),
//	)
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return server.Unmount()
//	})
//
// ErrorClassifier decides what is worth retrying and BackoffStrategy decides
// how long to wait. Executor is safe for concurrent use; WithOnRetry returns
// a copy instead of changing the receiver.
package retry
