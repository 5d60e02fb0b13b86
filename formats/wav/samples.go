// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// headerSize is the canonical RIFF + fmt + data header this codec
// writes; a stream shorter than this cannot carry any samples.
const headerSize = 44

// DecodeSamples reads a complete mono 16-bit PCM WAV stream and
// returns its samples. It fails with ErrTruncated when the stream is
// shorter than the canonical header or its data chunk ends mid-sample,
// ErrNotWavFile on bad magic, and ErrOnlyPCM16bitSupported /
// ErrOnlyMonoSupported on unsupported framing. Chunks other than fmt
// and data are skipped, so streams with metadata chunks still decode.
func DecodeSamples(r io.Reader) ([]int16, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav stream: %w", err)
	}
	if len(raw) < headerSize {
		return nil, ErrTruncated
	}

	dec := gowav.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if dec.BitDepth != 16 || dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans != 1 {
		return nil, ErrOnlyMonoSupported
	}

	// The truncation checks run against the data chunk the decoder
	// found, not the raw stream length, so trailing metadata chunks
	// do not read as cut-off samples.
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating wav data chunk: %w", err)
	}
	declared := dec.PCMLen()
	if declared%2 != 0 {
		return nil, ErrTruncated
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	if int64(len(buf.Data)) < declared/2 {
		return nil, ErrTruncated
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return samples, nil
}
