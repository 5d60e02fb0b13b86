// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ZhangO999/WAV-file-editor-library/utils"
)

// Resampler converts src to a target sample rate using Catmull-Rom
// cubic interpolation over a sliding four-frame window. The channel
// count is preserved; a one-pole low-pass smooths the input when
// downsampling, as crude anti-aliasing.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // source frames consumed per output frame

	// win[1] and win[2] bracket the current fractional position; win[0]
	// and win[3] supply the outer interpolation points.
	win    [4][]float32
	have   [4]bool
	pos    float64
	primed bool
	eof    bool

	frame []float32 // scratch for one source frame

	lpAlpha  float32
	lpState  []float32
	lpPrimed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]float32, channels),
		lpState:  make([]float32, channels),
	}
	if r.step > 1 {
		r.lpAlpha = 0.5
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one source frame into r.frame, applying the low-pass
// when enabled. Reports false once the source is exhausted.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return false, nil
	}

	if r.lpAlpha > 0 {
		if !r.lpPrimed {
			// Seed the filter with the first frame to avoid a
			// warm-up transient from the zero state.
			copy(r.lpState, r.frame)
			r.lpPrimed = true
		}
		for c := range r.frame {
			r.frame[c] = r.lpAlpha*r.frame[c] + (1-r.lpAlpha)*r.lpState[c]
			r.lpState[c] = r.frame[c]
		}
	}
	return true, nil
}

// prime fills the window with the first four source frames,
// duplicating the last available frame when the source is shorter.
func (r *Resampler) prime() error {
	for i := range r.win {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if !ok {
			if i == 0 {
				return io.EOF
			}
			copy(r.win[i], r.win[i-1])
			r.have[i] = true
			continue
		}
		copy(r.win[i], r.frame)
		r.have[i] = true
	}
	r.primed = true
	return nil
}

// advance shifts the window one source frame forward. Returns io.EOF
// once the bracket frames run out.
func (r *Resampler) advance() error {
	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if ok {
		copy(r.win[3], r.frame)
		r.have[3] = true
	} else {
		r.have[3] = false
	}

	if !r.have[1] || !r.have[2] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces interpolated samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y3 := r.win[2][c]
			if r.have[3] {
				y3 = r.win[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], y3, x)
		}
		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}
