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

// SampleFreq is the frequency at which audio data is produced.
const SampleFreq = 44100

// FrameRate is the number of frames per second. Must match the rate at
// which the emulation processes frames.
const FrameRate = 60

// SamplesPerFrame is the number of audio samples produced per frame.
const SamplesPerFrame = SampleFreq / FrameRate

// Silence is the value of a silent sample in unsigned 8-bit audio.
const Silence = 0x80

// Mixer implementations receive audio data.
type Mixer interface {
	SetAudio(samples []uint8) error

	// EndMixing is called when no more audio data will be sent.
	EndMixing() error
}

// the volume of the tone or sample at full volume. the sound timer tone is
// a simple sine wave and is unpleasant at a high volume.
const volumeScale = 0.1
