// SPDX-License-Identifier: EPL-2.0

package track

// correlationThreshold is the fraction of a pattern's self-energy a
// target window's correlation must reach to count as an occurrence.
const correlationThreshold = 0.95

// Match is one occurrence of a pattern inside a track, as an inclusive
// range of logical sample indices.
type Match struct {
	Start int
	End   int
}

// Identify locates non-overlapping occurrences of pattern inside the
// track. Both tracks are materialized to flat sample slices, the
// pattern's self-energy E = Σ pattern[j]² is computed, and a window of
// the pattern's length slides across the target; a window starting at
// i matches when Σ target[i+j]·pattern[j] reaches
// correlationThreshold·E. Matches are reported in ascending order of
// start index and the scan skips a full pattern length past each one,
// so they never overlap.
//
// This is an energy-ratio test against the reference pattern, not a
// normalized correlation coefficient: it is not scale invariant, and
// an amplitude-scaled copy of the pattern scores by its actual
// correlation rather than 1.0. Runs in O(len(track)·len(pattern)).
//
// The result is empty when either track is empty or the pattern is
// longer than the track.
func (t *Track) Identify(pattern *Track) []Match {
	if t.length == 0 || pattern.length == 0 || t.length < pattern.length {
		return nil
	}

	target := t.Samples()
	pat := pattern.Samples()

	var energy float64
	for _, v := range pat {
		energy += float64(v) * float64(v)
	}
	threshold := correlationThreshold * energy

	var matches []Match
	for i := 0; i+len(pat) <= len(target); {
		var corr float64
		for j, v := range pat {
			corr += float64(target[i+j]) * float64(v)
		}
		if corr >= threshold {
			matches = append(matches, Match{Start: i, End: i + len(pat) - 1})
			i += len(pat)
		} else {
			i++
		}
	}
	return matches
}
