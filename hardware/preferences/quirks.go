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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/prefs"
)

// LiveQuirks are the current (live) quirk values. They are updated
// automatically when the corresponding field in QuirksPreferences changes.
//
// The CPU reads these values for every instruction that is affected by a
// quirk so they should be preferred to the prefs.Bool values.
type LiveQuirks struct {
	VFReset              atomic.Bool
	WrapSprites          atomic.Bool
	LoadStoreIncrementsI atomic.Bool
}

// QuirksPreferences select between the behaviours of the different
// interpreters that the instruction set has accumulated over the years.
type QuirksPreferences struct {
	Live LiveQuirks

	// the logical instructions 8XY1, 8XY2 and 8XY3 reset VF to zero
	VFReset prefs.Bool

	// sprites drawn by DXYN wrap around the edges of the display. if false
	// then the parts of the sprite that are off the display are clipped. the
	// starting coordinates always wrap
	WrapSprites prefs.Bool

	// FX55 and FX65 leave I pointing at the address after the last register
	// loaded or stored
	LoadStoreIncrementsI prefs.Bool
}

func newQuirksPreferences() *QuirksPreferences {
	p := &QuirksPreferences{}

	p.VFReset.SetHookPost(func(v prefs.Value) error {
		p.Live.VFReset.Store(v.(bool))
		return nil
	})
	p.WrapSprites.SetHookPost(func(v prefs.Value) error {
		p.Live.WrapSprites.Store(v.(bool))
		return nil
	})
	p.LoadStoreIncrementsI.SetHookPost(func(v prefs.Value) error {
		p.Live.LoadStoreIncrementsI.Store(v.(bool))
		return nil
	})

	p.SetDefaults()

	return p
}

func (p *QuirksPreferences) add(dsk *prefs.Disk) error {
	if err := dsk.Add("hardware.quirks.vfReset", &p.VFReset); err != nil {
		return err
	}
	if err := dsk.Add("hardware.quirks.wrapSprites", &p.WrapSprites); err != nil {
		return err
	}
	return dsk.Add("hardware.quirks.loadStoreIncrementsI", &p.LoadStoreIncrementsI)
}

// SetDefaults reverts all quirks to default values.
func (p *QuirksPreferences) SetDefaults() {
	p.VFReset.Set(true)
	p.WrapSprites.Set(true)
	p.LoadStoreIncrementsI.Set(false)
}
