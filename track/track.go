// SPDX-License-Identifier: EPL-2.0

package track

// Track is an editable, in-memory sequence of 16-bit mono samples. It
// is stored as a chain of segments so that edits restructure the chain
// instead of shifting one flat sample array around; reading follows
// segment boundaries transparently.
//
// A Track is not safe for concurrent use. Callers that share a track
// across goroutines must serialize access externally.
type Track struct {
	head   *segment
	length int
}

// New returns an empty track.
func New() *Track {
	return &Track{}
}

// Len reports the number of samples in the track.
func (t *Track) Len() int {
	return t.length
}

// findAt maps a logical sample index to the segment holding it and the
// offset local to that segment. Returns nil when pos lies past the end.
// The walk is linear from the head and dominates the cost of every
// operation, which is why they are all O(segments touched).
func (t *Track) findAt(pos int) (*segment, int) {
	for s := t.head; s != nil; s = s.next {
		if pos >= s.start && pos < s.start+s.n {
			return s, pos - s.start
		}
	}
	return nil, 0
}

// prevOf returns the segment linked immediately before s, or nil when
// s is the head.
func (t *Track) prevOf(s *segment) *segment {
	if s == t.head {
		return nil
	}
	p := t.head
	for p != nil && p.next != s {
		p = p.next
	}
	return p
}

// last returns the final segment of the chain, or nil when empty.
func (t *Track) last() *segment {
	if t.head == nil {
		return nil
	}
	s := t.head
	for s.next != nil {
		s = s.next
	}
	return s
}

// recompute rebuilds every segment's logical start and the cached
// total length from a full walk of the chain. The chain order is the
// ground truth; the caches are rebuilt after every structural change,
// never adjusted incrementally.
func (t *Track) recompute() {
	pos := 0
	for s := t.head; s != nil; s = s.next {
		s.start = pos
		pos += s.n
	}
	t.length = pos
}

// Read returns n samples starting at logical index pos. A range that
// runs past the end is truncated to the stored samples, so the result
// may be shorter than n; it is never zero-padded. Reading an empty
// track, or from a pos at or past the end, yields an empty slice.
func (t *Track) Read(pos, n int) []int16 {
	if pos < 0 || n <= 0 || pos >= t.length {
		return nil
	}
	if pos+n > t.length {
		n = t.length - pos
	}
	dst := make([]int16, n)
	t.readInto(dst, pos)
	return dst
}

// readInto fills dst from consecutive segments starting at pos. The
// caller guarantees the range is within bounds.
func (t *Track) readInto(dst []int16, pos int) {
	s, local := t.findAt(pos)
	copied := 0
	for s != nil && copied < len(dst) {
		copied += copy(dst[copied:], s.view()[local:])
		local = 0
		s = s.next
	}
}

// Samples materializes the whole track as one flat slice.
func (t *Track) Samples() []int16 {
	return t.Read(0, t.length)
}

// Write copies src into the track starting at logical index pos,
// overwriting stored samples where they exist and extending the track
// when pos+len(src) runs past the end. Extension appends one freshly
// owned segment covering everything from the old end to the new one,
// so a pos beyond the end leaves a gap that reads back as zeros.
//
// Plain overwrites copy in place. An overwrite that lands on a
// non-owning segment (material shared in from another track) first
// re-points that segment at a private copy: shared buffers are
// read-only through non-owners, and the sharer count is released in
// the process. Writes through an owning segment are visible to every
// track still sharing its buffer.
func (t *Track) Write(src []int16, pos int) {
	if len(src) == 0 || pos < 0 {
		return
	}
	if end := pos + len(src); end > t.length {
		grown := newOwned(make([]int16, end-t.length))
		if tail := t.last(); tail != nil {
			tail.next = grown
		} else {
			t.head = grown
		}
		t.recompute()
	}

	s, local := t.findAt(pos)
	written := 0
	for s != nil && written < len(src) {
		if !s.owner {
			s.materialize()
		}
		written += copy(s.view()[local:], src[written:])
		local = 0
		s = s.next
	}
}
