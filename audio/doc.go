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

// Package audio generates the sound played while the sound timer is active.
//
// The machine has no sound hardware beyond the sound timer. While the timer
// is non-zero a tone is played. The tone is either a sine wave generated by
// the Tone type or a sample loaded from a WAV or MP3 file.
//
// The Beeper type converts the state of the sound timer into a frame's worth
// of audio data and forwards that data to any number of Mixer
// implementations. Audio data is unsigned 8-bit mono at SampleFreq.
package audio
