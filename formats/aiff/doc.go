// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF streams into audio.Source
// values for the import pipeline, using github.com/go-audio/aiff.
package aiff
