// SPDX-License-Identifier: EPL-2.0

package track

// Insert copies n samples, starting at srcPos in src, into the track
// at destPos. Samples before destPos are untouched; samples at or
// after it shift up by n. The inserted material lands in one freshly
// owned buffer, so src stays fully editable afterwards and src may be
// the track itself: the span is captured before the chain is
// restructured, so a self-insert cannot alias-corrupt mid-copy.
//
// Inserting zero samples is a no-op. The source span must lie within
// src and destPos must not exceed Len; otherwise ErrOutOfRange.
func (t *Track) Insert(src *Track, destPos, srcPos, n int) error {
	if err := t.checkInsert(src, destPos, srcPos, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	data := make([]int16, n)
	src.readInto(data, srcPos)
	run := newOwned(data)
	t.splice(run, run, destPos)
	return nil
}

// InsertShared splices n samples from src into the track at destPos
// without copying: the new segments view the source buffers directly.
// Each shared-in segment registers on its backing buffer, arming the
// delete guard: destructive deletes over the shared span fail with
// ErrBufferShared, on either track, until the sharing segments are
// removed again. Use Insert when the source must stay freely editable.
//
// Bounds and the zero-length no-op behave exactly as for Insert.
func (t *Track) InsertShared(src *Track, destPos, srcPos, n int) error {
	if err := t.checkInsert(src, destPos, srcPos, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	// Build the run of non-owning segments before touching the chain,
	// so sharing a track into itself walks a stable source.
	var head, tail *segment
	remaining := n
	for cursor := srcPos; remaining > 0; {
		s, local := src.findAt(cursor)
		take := min(remaining, s.n-local)
		clone := &segment{buf: s.buf, off: s.off + local, n: take}
		s.buf.refs++
		if head == nil {
			head = clone
		} else {
			tail.next = clone
		}
		tail = clone
		remaining -= take
		cursor += take
	}

	t.splice(head, tail, destPos)
	return nil
}

func (t *Track) checkInsert(src *Track, destPos, srcPos, n int) error {
	if n < 0 || destPos < 0 || srcPos < 0 ||
		destPos > t.length || srcPos+n > src.length {
		return ErrOutOfRange
	}
	return nil
}

// splice links the run head..tail into the chain so that head's first
// sample lands at logical index destPos. When destPos falls in the
// interior of an existing segment, that segment is split first, so the
// splice itself always happens on a segment boundary.
func (t *Track) splice(head, tail *segment, destPos int) {
	at, local := t.findAt(destPos)
	if at != nil && local > 0 {
		at = at.split(local)
	}

	switch {
	case at == nil:
		// destPos == Len: the run becomes the tail (or whole chain).
		if l := t.last(); l != nil {
			l.next = head
		} else {
			t.head = head
		}
	case at == t.head:
		tail.next = at
		t.head = head
	default:
		t.prevOf(at).next = head
		tail.next = at
	}

	t.recompute()
}
