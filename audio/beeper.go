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

package audio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
)

// Beeper converts the state of the sound timer into audio data.
type Beeper struct {
	prefs  *preferences.AudioPreferences
	tone   Tone
	sample *Sample

	// whether the previous frame was beeping
	beeping bool

	mixers []Mixer
	buffer []uint8
}

// NewBeeper is the preferred method of initialisation for the Beeper type. If
// the sample preference is set then the sample is loaded. A sample that
// cannot be loaded is logged and the generated tone is used instead.
func NewBeeper(prefs *preferences.AudioPreferences) *Beeper {
	bpr := &Beeper{
		prefs:  prefs,
		buffer: make([]uint8, SamplesPerFrame),
	}

	if path := prefs.Sample.String(); path != "" {
		var err error
		bpr.sample, err = LoadSample(path)
		if err != nil {
			logger.Log(logger.Allow, "audio", err)
		} else {
			logger.Logf(logger.Allow, "audio", "using sample %s", path)
		}
	}

	return bpr
}

// AddMixer adds a Mixer to the list of mixers that receive audio data.
func (bpr *Beeper) AddMixer(m Mixer) {
	bpr.mixers = append(bpr.mixers, m)
}

// Frame implements the engine.AudioSink interface. It produces a frame of
// audio data and sends it to every mixer.
func (bpr *Beeper) Frame(beeping bool) error {
	if !bpr.prefs.Enabled.Get().(bool) {
		beeping = false
	}

	if beeping {
		volume := bpr.prefs.Volume.Get().(float64)
		if bpr.sample != nil {
			if !bpr.beeping {
				bpr.sample.Rewind()
			}
			bpr.sample.Volume = volume
			bpr.sample.Generate(bpr.buffer)
		} else {
			bpr.tone.Frequency = bpr.prefs.Frequency.Get().(float64)
			bpr.tone.Volume = volume
			bpr.tone.Generate(bpr.buffer)
		}
	} else {
		for i := range bpr.buffer {
			bpr.buffer[i] = Silence
		}
	}

	bpr.beeping = beeping

	for _, m := range bpr.mixers {
		if err := m.SetAudio(bpr.buffer); err != nil {
			return curated.Errorf("audio: %v", err)
		}
	}

	return nil
}

// End calls EndMixing() on every mixer. All mixers are ended even if one of
// them returns an error. The first error is returned.
func (bpr *Beeper) End() error {
	var first error
	for _, m := range bpr.mixers {
		if err := m.EndMixing(); err != nil && first == nil {
			first = curated.Errorf("audio: %v", err)
		}
	}
	return first
}
