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

package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type captureMixer struct {
	frames [][]uint8
	ended  bool
}

func (m *captureMixer) SetAudio(samples []uint8) error {
	c := make([]uint8, len(samples))
	copy(c, samples)
	m.frames = append(m.frames, c)
	return nil
}

func (m *captureMixer) EndMixing() error {
	m.ended = true
	return nil
}

func silent(frame []uint8) bool {
	for _, s := range frame {
		if s != audio.Silence {
			return false
		}
	}
	return true
}

func newAudioPrefs(t *testing.T) *preferences.AudioPreferences {
	t.Helper()
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	p.SetDefaults()
	return p.Audio
}

func TestTone(t *testing.T) {
	tone := audio.Tone{Frequency: 440, Volume: 1.0}
	buf := make([]uint8, audio.SamplesPerFrame)
	tone.Generate(buf)

	test.ExpectEquality(t, buf[0], uint8(audio.Silence))
	test.ExpectEquality(t, silent(buf), false)

	// volume is scaled so the wave never strays far from silence
	for _, s := range buf {
		if s < audio.Silence-13 || s > audio.Silence+13 {
			t.Fatalf("sample out of range: %d", s)
		}
	}

	mute := audio.Tone{Frequency: 440, Volume: 0.0}
	mute.Generate(buf)
	test.ExpectEquality(t, silent(buf), true)
}

func TestBeeper(t *testing.T) {
	bpr := audio.NewBeeper(newAudioPrefs(t))
	mix := &captureMixer{}
	bpr.AddMixer(mix)

	test.ExpectSuccess(t, bpr.Frame(false))
	test.ExpectSuccess(t, bpr.Frame(true))
	test.ExpectSuccess(t, bpr.Frame(false))

	test.DemandEquality(t, len(mix.frames), 3)
	for _, f := range mix.frames {
		test.ExpectEquality(t, len(f), audio.SamplesPerFrame)
	}
	test.ExpectEquality(t, silent(mix.frames[0]), true)
	test.ExpectEquality(t, silent(mix.frames[1]), false)
	test.ExpectEquality(t, silent(mix.frames[2]), true)

	test.ExpectSuccess(t, bpr.End())
	test.ExpectEquality(t, mix.ended, true)
}

func TestBeeperDisabled(t *testing.T) {
	p := newAudioPrefs(t)
	test.DemandSuccess(t, p.Enabled.Set(false))

	bpr := audio.NewBeeper(p)
	mix := &captureMixer{}
	bpr.AddMixer(mix)

	test.ExpectSuccess(t, bpr.Frame(true))
	test.ExpectEquality(t, silent(mix.frames[0]), true)
}

func TestUnsupportedSample(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0}, 0644))

	_, err := audio.LoadSample(fn)
	test.ExpectEquality(t, curated.Is(err, audio.UnsupportedSample), true)

	_, err = audio.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectEquality(t, curated.Is(err, audio.SampleError), true)
}

func TestWAVSample(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sample.wav")

	// one frame of silence followed by one frame of tone
	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)
	frame := make([]uint8, audio.SamplesPerFrame)
	for i := range frame {
		frame[i] = audio.Silence
	}
	test.DemandSuccess(t, aw.SetAudio(frame))
	tone := audio.Tone{Frequency: 440, Volume: 1.0}
	tone.Generate(frame)
	test.DemandSuccess(t, aw.SetAudio(frame))
	test.DemandSuccess(t, aw.EndMixing())

	smp, err := audio.LoadSample(fn)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(smp.Data), 2*audio.SamplesPerFrame)
	test.ExpectApproximate(t, smp.Data[0], 0.0, 0.01)

	// the sample is used by the beeper in place of the tone
	p := newAudioPrefs(t)
	test.DemandSuccess(t, p.Sample.Set(fn))
	bpr := audio.NewBeeper(p)
	mix := &captureMixer{}
	bpr.AddMixer(mix)

	test.ExpectSuccess(t, bpr.Frame(true))
	test.ExpectSuccess(t, bpr.Frame(true))
	test.DemandEquality(t, len(mix.frames), 2)
	test.ExpectEquality(t, silent(mix.frames[0]), true)
	test.ExpectEquality(t, silent(mix.frames[1]), false)
}
