// SPDX-License-Identifier: EPL-2.0

package track

// buffer is a backing store for sample data. One buffer can be viewed
// through several segments: the pieces a split leaves behind, and
// non-owning segments spliced into other tracks by InsertShared. refs
// counts the non-owning viewers; while it is above zero, destructive
// edits of the owned region are rejected (see Delete).
type buffer struct {
	data []int16
	refs int
}

// segment is one contiguous run of samples inside a track's chain.
type segment struct {
	buf   *buffer
	off   int // index of this segment's first sample in buf.data
	n     int // number of samples the segment contributes
	start int // logical index of the first sample; recomputed after every structural change
	owner bool
	next  *segment
}

// newOwned wraps data in a segment that exclusively owns its buffer.
func newOwned(data []int16) *segment {
	return &segment{buf: &buffer{data: data}, n: len(data), owner: true}
}

// view returns the samples this segment contributes.
func (s *segment) view() []int16 {
	return s.buf.data[s.off : s.off+s.n]
}

// split divides s at local: s keeps [0, local) of its range and the
// returned right piece covers the remainder, relinked ahead of s's old
// successor. No data moves; both pieces keep viewing the same buffer.
// local must lie strictly inside (0, s.n).
func (s *segment) split(local int) *segment {
	right := &segment{
		buf:   s.buf,
		off:   s.off + local,
		n:     s.n - local,
		start: s.start + local,
		owner: s.owner,
		next:  s.next,
	}
	if !s.owner {
		s.buf.refs++
	}
	s.next = right
	s.n = local
	return right
}

// materialize re-points a non-owning segment at a private copy of its
// samples, releasing its claim on the shared buffer. Owning segments
// are left alone.
func (s *segment) materialize() {
	if s.owner {
		return
	}
	data := make([]int16, s.n)
	copy(data, s.view())
	s.buf.refs--
	s.buf = &buffer{data: data}
	s.off = 0
	s.owner = true
}
