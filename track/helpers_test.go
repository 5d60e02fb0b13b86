package track

import "testing"

// fromChunks builds a track whose chain holds one segment per chunk,
// by extending the track chunk by chunk.
func fromChunks(chunks ...[]int16) *Track {
	t := New()
	for _, c := range chunks {
		t.Write(c, t.Len())
	}
	return t
}

func seq(from, to int16) []int16 {
	s := make([]int16, 0, to-from+1)
	for v := from; v <= to; v++ {
		s = append(s, v)
	}
	return s
}

// checkInvariants verifies the chain ground truth against the caches:
// logical starts contiguous from zero with no gaps or overlaps, cached
// length equal to the traversal sum, and every segment view inside its
// buffer.
func checkInvariants(t *testing.T, tr *Track) {
	t.Helper()

	pos := 0
	for s := tr.head; s != nil; s = s.next {
		if s.start != pos {
			t.Fatalf("segment logical start = %d, want %d", s.start, pos)
		}
		if s.n <= 0 {
			t.Fatalf("segment with length %d left in chain", s.n)
		}
		if s.off < 0 || s.off+s.n > len(s.buf.data) {
			t.Fatalf("segment view [%d:%d) outside buffer of size %d", s.off, s.off+s.n, len(s.buf.data))
		}
		pos += s.n
	}
	if tr.length != pos {
		t.Fatalf("Len() = %d, want traversal sum %d", tr.length, pos)
	}
}

func checkSamples(t *testing.T, tr *Track, want []int16) {
	t.Helper()

	got := tr.Samples()
	if len(got) != len(want) {
		t.Fatalf("Samples() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Samples()[%d] = %d, want %d (full: %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

func segmentCount(tr *Track) int {
	n := 0
	for s := tr.head; s != nil; s = s.next {
		n++
	}
	return n
}
