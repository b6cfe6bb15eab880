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

package hardware

// Step executes a single instruction. Nothing happens if the machine has
// already halted.
func (m *Machine) Step() error {
	if m.Err != nil || m.ExitRequested {
		return m.Err
	}

	if err := m.CPU.ExecuteInstruction(); err != nil {
		return m.halt(err)
	}

	return nil
}

// RunFrame executes one frame's worth of instructions. The timers are ticked
// and the frame count is advanced at the end of a complete frame.
//
// The batch ends early, without ticking the timers or advancing the frame
// count, if the machine halts, if an exit is requested or if the machine
// stops running part way through the frame. The last case happens when
// running is turned off while the FX0A instruction is waiting for a key.
//
// The StepOnce flag is cleared.
func (m *Machine) RunFrame() error {
	defer func() {
		m.StepOnce = false
	}()

	for i := uint32(0); i < m.OpcodesPerFrame; i++ {
		if err := m.Step(); err != nil {
			return err
		}
		if m.ExitRequested {
			return nil
		}
		if !m.Running && !m.StepOnce {
			return nil
		}
	}

	m.Timers.Tick()
	m.Frame++

	return nil
}
