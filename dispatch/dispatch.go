// SPDX-License-Identifier: GPL-2.0-or-later

// Package dispatch lets any goroutine hand work to the thread running
// the client loop.
package dispatch

import (
	"sync"
)

type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// Post queues f. It never blocks.
func (q *Queue) Post(f func()) {
	if f == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, f)
	q.mu.Unlock()
}

// Process runs the tasks queued so far in FIFO order. Tasks queued while
// processing run on the next call.
func (q *Queue) Process() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	for _, t := range tasks {
		t()
	}
	return len(tasks)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

var (
	mainQueue Queue
)

// Main is the queue drained once per frame by the client loop.
func Main() *Queue {
	return &mainQueue
}
