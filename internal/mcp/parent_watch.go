package mcp

import (
	"context"
	"os"
	"time"

	"beacon/internal/logging"
)

// WatchParent monitors the parent process from a background goroutine and
// calls cancelFn when it dies, so a stdio server does not linger as a
// zombie after the chat client disconnects or restarts.
//
// It must NOT read from stdin: the SDK's stdio transport owns stdin
// exclusively, and stealing bytes would corrupt the JSON-RPC stream. Parent
// death is detected by watching for a PPID change instead.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	logger := logging.New("watchdog")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logger.Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
