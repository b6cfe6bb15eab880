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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	sound "github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// sentinal error pattern.
const WavWriterError = "wavwriter: %v"

// the audio format value for uncompressed PCM data.
const pcmFormat = 1

// WavWriter implements the audio.Mixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavWriterError, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, sound.SampleFreq),
	}

	return aw, nil
}

// SetAudio implements the audio.Mixer interface.
func (aw *WavWriter) SetAudio(samples []uint8) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// EndMixing implements the audio.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, sound.SampleFreq, 8, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sound.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", aw.Len(), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	// closing the encoder writes the header. it does not close the file
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

// Len returns the number of buffered samples.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}
