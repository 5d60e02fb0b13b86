// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source values
// for the import pipeline, using github.com/jfreymuth/oggvorbis.
package vorbis
