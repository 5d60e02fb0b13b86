// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source values for the
// import pipeline, using github.com/hajimehoshi/go-mp3. The output is
// always stereo at the stream's native rate; the pipeline downmixes
// and resamples before material reaches a track.
package mp3
