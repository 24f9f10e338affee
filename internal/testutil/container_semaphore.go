// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

// ContainerSemaphore bounds how many JDK containers integration tests start at
// once. Send to acquire a slot, receive to release it:
//
//	sem := testutil.ContainerSemaphore()
//	sem <- struct{}{}
//	defer func() { <-sem }()
var ContainerSemaphore = sync.OnceValue(func() chan struct{} {
	return make(chan struct{}, containerParallelism())
})

// containerParallelism reads JLINKRUN_TEST_CONTAINER_PARALLEL and falls back
// to min(GOMAXPROCS, 2).
func containerParallelism() int {
	if v := os.Getenv("JLINKRUN_TEST_CONTAINER_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return min(runtime.GOMAXPROCS(0), 2)
}
