//go:build !linux
// +build !linux

package gym

import (
	"bytes"
	"runtime"
	"strconv"
)

// threadID returns an id unique to the calling goroutine, which while
// locked to its OS thread is the only goroutine running on it
func threadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	field := bytes.Fields(bytes.TrimPrefix(buf[:n], []byte("goroutine ")))[0]
	id, _ := strconv.ParseInt(string(field), 10, 64)
	return id
}
