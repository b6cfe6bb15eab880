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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Idle is the default state. The emulation is not running but is still
// responsive to commands.
//
// Stepping means that a single frame has been requested while the emulation
// is Idle. The state returns to Idle after the frame.
//
// Errored and Exiting are terminal. An Errored emulation will not execute any
// more instructions but will continue to service commands. An Exiting
// emulation will end at the earliest opportunity.
const (
	Idle State = iota
	Running
	Stepping
	Errored
	Exiting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Stepping:
		return "Stepping"
	case Errored:
		return "Errored"
	case Exiting:
		return "Exiting"
	}

	return ""
}

// Terminal returns true if the state cannot be left.
func (s State) Terminal() bool {
	return s == Errored || s == Exiting
}

// Executing returns true if instructions should be executed in this state.
func (s State) Executing() bool {
	return s == Running || s == Stepping
}

// SubState allows more detail for some states. Normal indicates that there
// is no more information to impart about the state.
type SubState int

// List of possible sub states.
const (
	Normal SubState = iota
	WaitingForKey
)

func (s SubState) String() string {
	switch s {
	case WaitingForKey:
		return "Waiting for key"
	}
	return ""
}

// StateIntegrity checks whether the combination of state, sub-state makes
// sense.
//
// Rules:
//
//  1. Normal can coexist with any state
//
//  2. WaitingForKey can only be paired with the Running and Stepping states
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	return subState == WaitingForKey && state.Executing()
}

// Derive the state from the control flags of the machine. Exiting takes
// priority over Errored, which takes priority over Running and Stepping.
func Derive(running bool, stepOnce bool, exitRequested bool, err error) State {
	switch {
	case exitRequested:
		return Exiting
	case err != nil:
		return Errored
	case running:
		return Running
	case stepOnce:
		return Stepping
	}
	return Idle
}
