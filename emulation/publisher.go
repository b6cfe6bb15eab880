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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware"
)

// Reader is the consumer side of a Publisher.
type Reader interface {
	// Latest returns the most recently published snapshot. Never blocks and
	// never returns nil.
	Latest() *hardware.Snapshot

	// Updated returns a channel that receives a value when a new snapshot
	// has been published. Notifications are coalesced.
	Updated() <-chan struct{}
}

// Publisher is a single slot holding the most recent snapshot. Publishing a
// new snapshot replaces the previous one whether it has been read or not.
type Publisher struct {
	latest  atomic.Pointer[hardware.Snapshot]
	updated chan struct{}
}

// NewPublisher is the preferred method of initialisation for the Publisher
// type. The initial snapshot must not be nil.
func NewPublisher(initial *hardware.Snapshot) *Publisher {
	p := &Publisher{
		updated: make(chan struct{}, 1),
	}
	p.latest.Store(initial)
	return p
}

// Publish a new snapshot. Never blocks. The snapshot should not be modified
// after it has been published.
func (p *Publisher) Publish(s *hardware.Snapshot) {
	if s == nil {
		return
	}
	p.latest.Store(s)
	select {
	case p.updated <- struct{}{}:
	default:
	}
}

// Latest implements the Reader interface.
func (p *Publisher) Latest() *hardware.Snapshot {
	return p.latest.Load()
}

// Updated implements the Reader interface.
func (p *Publisher) Updated() <-chan struct{} {
	return p.updated
}
