// SPDX-License-Identifier: EPL-2.0

// Package track implements an editable, in-memory sequence of 16-bit
// mono audio samples backed by a chain of segments, the audio cousin
// of a text-editor rope.
//
// # Segment chain
//
// A Track stores its samples as an ordered chain of segments, each a
// contiguous view into a backing buffer. Edits that would force a flat
// array to shift every later sample (insertion, range deletion)
// instead restructure the chain: segments are split at edit
// boundaries, unlinked, or spliced in, and only the samples inside the
// touched segments ever move. After every structural change the
// per-segment logical offsets and the total length are recomputed from
// a full walk of the chain.
//
// # Editing
//
//	t := track.New()
//	t.Write(samples, 0)          // overwrite and/or extend
//	got := t.Read(100, 50)       // follows segment boundaries
//	err := t.Delete(100, 50)     // two-pass, all-or-nothing
//	err = t.Insert(src, 40, 0, 25)
//
// Write extends the track when the range runs past the end; writing
// beyond the end leaves a zero-filled gap. Read truncates at the end
// of the track rather than padding or failing.
//
// # Sharing and the delete guard
//
// Insert copies the source span, so the source track stays freely
// editable. InsertShared splices segments that view the source
// buffers directly; every shared-in segment registers on its backing
// buffer, and Delete refuses (with ErrBufferShared) any edit that
// would destructively shrink or move samples another track still
// reads through that buffer. Overwriting a shared-in span is handled
// by copy-on-write instead of failing.
//
// # Pattern matching
//
// Identify finds non-overlapping occurrences of one track inside
// another, such as an inserted jingle, using a sliding-window
// correlation against the pattern's self-energy.
//
// Tracks are not safe for concurrent use; callers must serialize
// access to each track externally.
package track
