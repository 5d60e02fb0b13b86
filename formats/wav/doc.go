// SPDX-License-Identifier: EPL-2.0

// Package wav is the codec between flat sample slices and WAV byte
// streams. It carries the editor's one persistence format: mono
// 16-bit PCM with the canonical 44-byte RIFF header.
//
// # Flat codec
//
// DecodeSamples and Encode convert whole streams at once, which is
// how the editing layer loads and saves tracks:
//
//	samples, err := wav.DecodeSamples(f)
//	...
//	err = wav.Encode(out, 8000, samples)
//
// Encode is deterministic: the same samples and rate always produce
// the same bytes. DecodeSamples fails with ErrTruncated on a stream
// cut short of the header or mid-sample, ErrNotWavFile on bad magic,
// and ErrOnlyPCM16bitSupported / ErrOnlyMonoSupported when the
// framing does not match the editor's.
//
// # Streaming decoder
//
// Decoder yields an audio.Source for the import pipeline. Unlike the
// flat codec it accepts any rate and channel count; resampling and
// downmixing to the editor's framing happen downstream. Decoding is
// built on github.com/go-audio/wav, so non-canonical chunk layouts
// are handled there.
package wav
