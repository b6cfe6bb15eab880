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

// Package sdlaudio plays audio data through an SDL audio device.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
)

// sentinal error pattern.
const SDLAudioError = "sdlaudio: %v"

// the buffer length is important to get right. unfortunately, there's no
// special way (that I know of) that can tells us what the ideal value is. we
// don't want it to be long because we can introduce unnecessary lag between
// the audio and video signal; by the same token we don't want it too short
// because the device will underflow and click.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// if the amount of queued audio exceeds this value then the queue is cleared
// before more data is added. this happens when the emulation is running
// faster than the audio device is consuming data.
const maxQueued = audio.SamplesPerFrame * 4

// Audio outputs sound using SDL. It implements the audio.Mixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// buffer used to convert audio data if the device silence value differs
	// from ours
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type. SDL
// audio must have been initialised.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLAudioError, err)
	}

	aud.spec = actualSpec
	aud.buffer = make([]uint8, audio.SamplesPerFrame)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the audio.Mixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}

	data := samples
	if aud.spec.Silence != audio.Silence {
		if len(aud.buffer) < len(samples) {
			aud.buffer = make([]uint8, len(samples))
		}
		data = aud.buffer[:len(samples)]
		for i, s := range samples {
			data[i] = s - audio.Silence + aud.spec.Silence
		}
	}

	if err := sdl.QueueAudio(aud.id, data); err != nil {
		return curated.Errorf(SDLAudioError, err)
	}

	return nil
}

// EndMixing implements the audio.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
