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
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopher8/curated"
)

// sentinal error patterns.
const (
	SampleError       = "sample: %v"
	UnsupportedSample = "sample: unsupported file type (%s)"
)

// Sample is a mono recording, resampled to SampleFreq. Values are in the
// range -1.0 to 1.0.
type Sample struct {
	Data []float32

	// volume in the range 0.0 to 1.0
	Volume float64

	// playback position. the sample loops
	pos int
}

// LoadSample reads a WAV or MP3 file. The file type is decided by the file
// extension. Only the first channel of a multi-channel file is used.
func LoadSample(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}
	defer f.Close()

	var data []float32
	var rate int

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		data, rate, err = decodeWAV(f)
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedSample, filepath.Ext(path))
	}
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}

	if len(data) == 0 || rate <= 0 {
		return nil, curated.Errorf(SampleError, "no audio data")
	}

	return &Sample{
		Data:   resample(data, rate, SampleFreq),
		Volume: 1.0,
	}, nil
}

func decodeWAV(f io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(f)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	if buf.SourceBitDepth < 8 {
		return nil, 0, errors.New("unsupported bit depth")
	}

	// normalise to the range -1.0 to 1.0. 8bit wav data is unsigned
	var bias float32
	scale := float32(int(1) << (buf.SourceBitDepth - 1))
	if buf.SourceBitDepth == 8 {
		bias = scale
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}

	fb := buf.AsFloat32Buffer()
	data := make([]float32, 0, len(fb.Data)/numChans)
	for i := 0; i < len(fb.Data); i += numChans {
		data = append(data, (fb.Data[i]-bias)/scale)
	}

	return data, int(dec.SampleRate), nil
}

func decodeMP3(f io.Reader) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	// the decoded stream is always 16bit little endian stereo. a sample
	// consists of four bytes and we only want the left channel
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, err
	}

	data := make([]float32, 0, len(raw)/4)
	for i := 0; i+1 < len(raw); i += 4 {
		v := int16(binary.LittleEndian.Uint16(raw[i:]))
		data = append(data, float32(v)/32768.0)
	}

	return data, dec.SampleRate(), nil
}

// resample with nearest neighbour interpolation.
func resample(data []float32, from int, to int) []float32 {
	if from == to {
		return data
	}
	n := int(int64(len(data)) * int64(to) / int64(from))
	if n == 0 {
		n = 1
	}
	out := make([]float32, n)
	for i := range out {
		j := int(int64(i) * int64(from) / int64(to))
		if j >= len(data) {
			j = len(data) - 1
		}
		out[i] = data[j]
	}
	return out
}

// Generate fills the buffer with the next part of the sample.
func (s *Sample) Generate(buf []uint8) {
	amp := 127.0 * s.Volume
	for i := range buf {
		v := float64(s.Data[s.pos])
		buf[i] = uint8(Silence + int(v*amp))
		s.pos++
		if s.pos >= len(s.Data) {
			s.pos = 0
		}
	}
}

// Rewind the sample to the beginning.
func (s *Sample) Rewind() {
	s.pos = 0
}
