// SPDX-License-Identifier: EPL-2.0

package track

import "testing"

func TestIdentifyFindsNonOverlappingMatches(t *testing.T) {
	t.Parallel()

	target := New()
	target.Write([]int16{1, 2, 3, 10, 20, 30, 4, 5, 6, 10, 20, 30, 7, 8, 9}, 0)
	pattern := New()
	pattern.Write([]int16{10, 20, 30}, 0)

	got := target.Identify(pattern)
	want := []Match{{Start: 3, End: 5}, {Start: 9, End: 11}}

	if len(got) != len(want) {
		t.Fatalf("Identify = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Identify = %v, want %v", got, want)
		}
	}
}

func TestIdentifyAdjacentOccurrences(t *testing.T) {
	t.Parallel()

	// Back-to-back copies: the scan skips a full pattern length after
	// each match, so both are reported without overlap.
	target := New()
	target.Write([]int16{100, 200, 100, 200, 5, 5}, 0)
	pattern := New()
	pattern.Write([]int16{100, 200}, 0)

	got := target.Identify(pattern)
	want := []Match{{Start: 0, End: 1}, {Start: 2, End: 3}}

	if len(got) != len(want) {
		t.Fatalf("Identify = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Identify = %v, want %v", got, want)
		}
	}
}

func TestIdentifyNotScaleInvariant(t *testing.T) {
	t.Parallel()

	// A half-amplitude copy only reaches half the reference energy,
	// below the 0.95 threshold.
	target := New()
	target.Write([]int16{50, 100, 150, 0, 0, 0}, 0)
	pattern := New()
	pattern.Write([]int16{100, 200, 300}, 0)

	if got := target.Identify(pattern); len(got) != 0 {
		t.Fatalf("Identify of scaled copy = %v, want none", got)
	}
}

func TestIdentifyDegenerateInputs(t *testing.T) {
	t.Parallel()

	filled := New()
	filled.Write(seq(1, 5), 0)
	long := New()
	long.Write(seq(1, 10), 0)

	tests := []struct {
		name    string
		target  *Track
		pattern *Track
	}{
		{"empty target", New(), filled},
		{"empty pattern", filled, New()},
		{"pattern longer than target", filled, long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Identify(tt.pattern); len(got) != 0 {
				t.Fatalf("Identify = %v, want none", got)
			}
		})
	}
}

func TestIdentifyOnFragmentedTracks(t *testing.T) {
	t.Parallel()

	// Identical logical content, different segmentation: the matcher
	// reads through segment boundaries.
	target := fromChunks([]int16{1, 2}, []int16{3, 10, 20}, []int16{30, 4, 5, 6})
	pattern := fromChunks([]int16{10}, []int16{20, 30})

	got := target.Identify(pattern)
	if len(got) != 1 || got[0] != (Match{Start: 3, End: 5}) {
		t.Fatalf("Identify = %v, want [{3 5}]", got)
	}
}
