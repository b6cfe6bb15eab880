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
)

// default values for the audio preferences.
const (
	DefaultAudioFrequency = 440.0
	DefaultAudioVolume    = 1.0
)

// sentinal error pattern.
const VolumeRange = "preferences: volume must be between 0.0 and 1.0 (%.3f)"

// AudioPreferences control the tone played while the sound timer is active.
type AudioPreferences struct {
	Enabled prefs.Bool

	// frequency of the tone in Hz
	Frequency prefs.Float

	// volume of the tone in the range 0.0 to 1.0
	Volume prefs.Float

	// path to a WAV or MP3 file. if not empty the file is played instead of
	// the generated tone
	Sample prefs.String
}

func newAudioPreferences() *AudioPreferences {
	p := &AudioPreferences{}

	p.Volume.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0.0 || v.(float64) > 1.0 {
			return curated.Errorf(VolumeRange, v.(float64))
		}
		return nil
	})

	p.SetDefaults()

	return p
}

func (p *AudioPreferences) add(dsk *prefs.Disk) error {
	if err := dsk.Add("audio.enabled", &p.Enabled); err != nil {
		return err
	}
	if err := dsk.Add("audio.frequency", &p.Frequency); err != nil {
		return err
	}
	if err := dsk.Add("audio.volume", &p.Volume); err != nil {
		return err
	}
	return dsk.Add("audio.sample", &p.Sample)
}

// SetDefaults reverts all audio settings to default values.
func (p *AudioPreferences) SetDefaults() {
	p.Enabled.Set(true)
	p.Frequency.Set(DefaultAudioFrequency)
	p.Volume.Set(DefaultAudioVolume)
	p.Sample.Set("")
}
