// SPDX-License-Identifier: EPL-2.0

package wavedit

import (
	"fmt"
	"io"
	"os"

	"github.com/ZhangO999/WAV-file-editor-library/formats/wav"
	"github.com/ZhangO999/WAV-file-editor-library/track"
)

// DefaultSampleRate is the fixed rate of every track the editor
// persists: 8 kHz mono 16-bit PCM.
const DefaultSampleRate = 8000

// Load reads a mono 16-bit PCM WAV stream into a fresh track.
func Load(r io.Reader) (*track.Track, error) {
	samples, err := wav.DecodeSamples(r)
	if err != nil {
		return nil, err
	}
	t := track.New()
	t.Write(samples, 0)
	return t, nil
}

// LoadFile reads a WAV file into a fresh track.
func LoadFile(path string) (*track.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes the whole track as a mono 16-bit PCM WAV stream at
// DefaultSampleRate.
func Save(w io.Writer, t *track.Track) error {
	return wav.Encode(w, DefaultSampleRate, t.Samples())
}

// SaveFile writes the track to a WAV file, replacing any existing
// content.
func SaveFile(path string, t *track.Track) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Save(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
