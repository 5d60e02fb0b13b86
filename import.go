// SPDX-License-Identifier: EPL-2.0

package wavedit

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZhangO999/WAV-file-editor-library/audio"
	"github.com/ZhangO999/WAV-file-editor-library/formats/aiff"
	"github.com/ZhangO999/WAV-file-editor-library/formats/mp3"
	"github.com/ZhangO999/WAV-file-editor-library/formats/vorbis"
	"github.com/ZhangO999/WAV-file-editor-library/formats/wav"
	"github.com/ZhangO999/WAV-file-editor-library/track"
)

// ErrUnknownFormat is returned by Import for a format key no decoder
// is registered under.
var ErrUnknownFormat = errors.New("unknown audio format")

// importBufSize is the read granularity of the import pipeline.
const importBufSize = 4096

// Formats returns a registry holding every decoder the editor ships:
// "wav", "mp3", "ogg" and "aiff".
func Formats() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// Import decodes r with the decoder registered under format, converts
// the result to the editor's framing (DefaultSampleRate, mono, 16-bit)
// and returns it as a fresh track. Tracks persist as WAV only; Import
// exists so material from other containers and rates can be edited.
func Import(r io.Reader, format string) (*track.Track, error) {
	dec, ok := Formats().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	samples, err := audio.CollectMono16(src, DefaultSampleRate, importBufSize)
	if err != nil {
		return nil, fmt.Errorf("importing %s audio: %w", format, err)
	}

	t := track.New()
	t.Write(samples, 0)
	return t, nil
}
