// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ZhangO999/WAV-file-editor-library/utils"
)

// CollectMono16 drains src through a resample-then-downmix pipeline
// and returns the result as mono 16-bit PCM at targetRate. bufSize
// controls the read granularity; 4096 is a reasonable default.
//
// This is the bridge between arbitrary decoded audio and the editing
// layer, which operates on flat int16 sample slices at a fixed rate.
func CollectMono16(src Source, targetRate, bufSize int) ([]int16, error) {
	mono := NewMonoMixer(NewResampler(src, targetRate))

	var pcm []int16
	buf := make([]float32, bufSize)
	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}
		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
