// SPDX-License-Identifier: EPL-2.0

// Package wavedit is an in-memory WAV track editor. A track is an
// editable sequence of 8 kHz mono 16-bit samples stored as a chain of
// segments, so inserting and deleting ranges restructures the chain
// instead of shifting a flat array, much like a text editor's rope.
//
// # Quick start
//
//	t, err := wavedit.LoadFile("take.wav")
//	if err != nil {
//	    // handle
//	}
//
//	// Cut two seconds starting at the five-second mark.
//	if err := t.Delete(5*wavedit.DefaultSampleRate, 2*wavedit.DefaultSampleRate); err != nil {
//	    // handle
//	}
//
//	err = wavedit.SaveFile("take-cut.wav", t)
//
// The editing operations (Write, Read, Delete, Insert, InsertShared,
// Identify) live on track.Track; see the track package for their
// exact semantics, including the buffer-sharing policy and its delete
// guard.
//
// # Importing other formats
//
// Tracks persist as WAV only, but material can be imported from MP3,
// Ogg Vorbis, AIFF, or WAV files at any rate and channel count:
//
//	ad, err := wavedit.Import(f, "mp3")
//
// Import decodes, resamples to DefaultSampleRate with cubic
// interpolation, downmixes to mono, and returns a fresh track. The
// pipeline pieces are exposed in the audio and formats subpackages
// for callers that need more control.
//
// # Finding inserted clips
//
// track.Identify locates occurrences of one track inside another by
// sliding-window correlation, for example every spot where a known
// advertisement was spliced into a recording:
//
//	for _, m := range t.Identify(ad) {
//	    fmt.Printf("ad at samples %d..%d\n", m.Start, m.End)
//	}
package wavedit
