// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived goroutines that stop together
package background

import (
	"sync"
)

// Process - a background task, Run must return soon after shutdown closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle to a started set of processes
type T struct {
	sync.Mutex
	shutdown chan struct{}
	finished sync.WaitGroup
	stopped  bool
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		register.finished.Add(1)
		go func(p Process) {
			defer register.finished.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes and wait for them to finish
//
// calling Stop more than once is harmless
func (t *T) Stop() {
	t.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.Unlock()

	t.finished.Wait()
}
