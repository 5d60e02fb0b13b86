// SPDX-License-Identifier: EPL-2.0

package track

// Delete removes n samples starting at logical index pos, shifting
// every later sample down by n. Segments fully covered by the range
// are unlinked from the chain; partially covered ones shrink in place.
// A clean-edge removal only adjusts the segment's offset and length,
// while an interior cut moves the surviving tail left within the
// segment's own buffer region.
//
// The whole affected span is validated before anything is touched, so
// a failed delete leaves the track exactly as it was. Delete fails
// with ErrOutOfRange when the range runs past the end, and with
// ErrBufferShared when the edit would be destructive for a buffer
// still viewed from elsewhere: any shrink of an owning segment whose
// buffer has registered sharers, or an interior cut of a non-owning
// segment, whose tail move would scribble on the shared buffer.
// Trimming a non-owning segment's edges, or removing it entirely,
// stays legal; a full removal releases its claim on the buffer.
//
// Deleting a zero-length range is a no-op.
func (t *Track) Delete(pos, n int) error {
	if pos < 0 || n < 0 || pos+n > t.length {
		return ErrOutOfRange
	}
	if n == 0 {
		return nil
	}

	first, local := t.findAt(pos)

	// Validation pass over every segment the range touches.
	remaining := n
	for s, lo := first, local; s != nil && remaining > 0; s = s.next {
		take := min(remaining, s.n-lo)
		if s.owner && s.buf.refs > 0 {
			return ErrBufferShared
		}
		if !s.owner && lo > 0 && lo+take < s.n {
			return ErrBufferShared
		}
		remaining -= take
		lo = 0
	}

	// Mutation pass.
	prev := t.prevOf(first)
	s, lo := first, local
	remaining = n
	for s != nil && remaining > 0 {
		take := min(remaining, s.n-lo)
		switch {
		case lo == 0 && take == s.n:
			// The whole segment goes away.
			if !s.owner {
				s.buf.refs--
			}
			if prev == nil {
				t.head = s.next
			} else {
				prev.next = s.next
			}
			remaining -= take
			s = s.next
			continue
		case lo == 0:
			// Drop a prefix: slide the view forward.
			s.off += take
			s.n -= take
		case lo+take == s.n:
			// Drop a suffix.
			s.n -= take
		default:
			// Interior cut: move the tail left inside this
			// segment's own region. Validation already ruled out
			// non-owners here.
			d := s.buf.data
			copy(d[s.off+lo:s.off+s.n-take], d[s.off+lo+take:s.off+s.n])
			s.n -= take
		}
		remaining -= take
		prev = s
		s = s.next
		lo = 0
	}

	t.recompute()
	return nil
}
