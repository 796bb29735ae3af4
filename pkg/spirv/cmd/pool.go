// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
)

// stdoutMu serialises writes made by concurrent workers below, so that one
// file's disassembly (or status line) is never interleaved with another's.
var stdoutMu sync.Mutex

// runOverFiles dispatches process once per entry in files across a bounded
// pool of worker goroutines, cancelling the shared context on the first
// SIGINT so workers still queued skip their remaining work instead of
// continuing after a user's Ctrl-C. It returns true only if every call to
// process returned true.
func runOverFiles(files []string, process func(ctx context.Context, filename string) bool) bool {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	queue := make(chan string, len(files))
	for _, filename := range files {
		queue <- filename
	}
	close(queue)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	ok := true

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for filename := range queue {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if !process(ctx, filename) {
					mu.Lock()
					ok = false
					mu.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	return ok
}
