// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package emulation

import (
	"sync"
)

// Queue is an unbounded, multi-producer, single-consumer queue of commands.
// Commands are delivered in the order they were pushed.
type Queue struct {
	crit    sync.Mutex
	pending []Command

	// the slice returned by the previous call to Drain(). reused by the next
	// call to Drain() so that memory use is bounded by the rate of production
	spare []Command

	notify chan struct{}
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
	}
}

// Push adds a command to the queue. Never blocks.
func (q *Queue) Push(cmd Command) {
	q.crit.Lock()
	q.pending = append(q.pending, cmd)
	q.crit.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Drain returns all pending commands and empties the queue. The returned
// slice is only valid until the next call to Drain(). Should only be called
// by the consumer.
func (q *Queue) Drain() []Command {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	drained := q.pending
	clear(q.spare)
	q.pending = q.spare[:0]
	q.spare = drained

	return drained
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.pending)
}

// Notify returns a channel that receives a value after one or more commands
// have been pushed. Notifications are coalesced so a single receive might
// correspond to many pushes.
func (q *Queue) Notify() <-chan struct{} {
	return q.notify
}
