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

// Package environment is the context in which a machine runs. Any number of
// machines can exist at once, each with their own environment. The label
// distinguishes the main emulation from any others (for example, an emulation
// created for a test).
package environment

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences

	// if Quiet is true then the environment will not allow logging
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil then a new instance of the preferences
// will be created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reset()
	env.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet
}
