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

package preferences

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// default values for the machine preferences.
const (
	DefaultOpcodesPerFrame = 20
	DefaultDisplayWidth    = 64
	DefaultDisplayHeight   = 32
)

// sentinal error patterns.
const (
	PreferencesError = "preferences: %v"
	NotPositive      = "preferences: %s must be positive (%d)"
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// the number of instructions executed every frame. must be positive
	OpcodesPerFrame prefs.Int

	// size of the display. the size is fixed when the machine is created so a
	// change to these values takes effect only for new machines
	DisplayWidth  prefs.Int
	DisplayHeight prefs.Int

	Quirks *QuirksPreferences
	Audio  *AudioPreferences
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func positive(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(NotPositive, name, v.(int))
		}
		return nil
	}
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		Quirks: newQuirksPreferences(),
		Audio:  newAudioPreferences(),
	}

	p.OpcodesPerFrame.SetHookPre(positive("opcodes per frame"))
	p.DisplayWidth.SetHookPre(positive("display width"))
	p.DisplayHeight.SetHookPre(positive("display height"))

	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	err = p.dsk.Add("hardware.opcodesPerFrame", &p.OpcodesPerFrame)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	err = p.dsk.Add("hardware.display.width", &p.DisplayWidth)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	err = p.dsk.Add("hardware.display.height", &p.DisplayHeight)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	err = p.Quirks.add(p.dsk)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	err = p.Audio.add(p.dsk)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf(PreferencesError, err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.OpcodesPerFrame.Set(DefaultOpcodesPerFrame)
	p.DisplayWidth.Set(DefaultDisplayWidth)
	p.DisplayHeight.Set(DefaultDisplayHeight)
	p.Quirks.SetDefaults()
	p.Audio.SetDefaults()
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
