// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ZhangO999/WAV-file-editor-library/audio"
)

// floatReader is the slice of oggvorbis.Reader the source needs, split
// out so tests can substitute a fake.
type floatReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        floatReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads directly into a float32 slice; trim dst to whole
	// frames so channels stay aligned.
	whole := len(dst) - len(dst)%s.channels
	n, err := s.dec.Read(dst[:whole])
	if n == 0 && err == nil {
		return 0, nil
	}
	return n, err
}

// Decoder produces a streaming audio.Source from an Ogg Vorbis stream.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg vorbis: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
