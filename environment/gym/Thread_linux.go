package gym

import "golang.org/x/sys/unix"

// threadID returns the id of the calling OS thread. The caller must be
// locked to its thread.
func threadID() int64 {
	return int64(unix.Gettid())
}
