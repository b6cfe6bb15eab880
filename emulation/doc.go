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

// Package emulation defines the control plane between an emulation and the
// frontends that drive it.
//
// Frontends send Command values through a Queue. The queue is unbounded and
// pushing a command never blocks. The emulation drains the queue at the
// start of every frame.
//
// The emulation publishes snapshots of the machine through a Publisher.
// Frontends read the most recent snapshot through a Reader. Publishing never
// blocks and reading never blocks. Snapshots that are never read are simply
// replaced by newer ones.
package emulation
