// SPDX-License-Identifier: EPL-2.0

package wavedit_test

import (
	"bytes"
	"fmt"
	"log"

	wavedit "github.com/ZhangO999/WAV-file-editor-library"
	"github.com/ZhangO999/WAV-file-editor-library/track"
)

// Round-trips a short recording through the WAV codec, edits it and
// locates a pattern in the result.
func Example() {
	tr := track.New()
	tr.Write([]int16{100, 5, 9, 9, 100, 5, 3, 4}, 0)

	var buf bytes.Buffer
	if err := wavedit.Save(&buf, tr); err != nil {
		log.Fatal(err)
	}

	back, err := wavedit.Load(&buf)
	if err != nil {
		log.Fatal(err)
	}
	if err := back.Delete(2, 2); err != nil {
		log.Fatal(err)
	}
	fmt.Println(back.Samples())

	pattern := track.New()
	pattern.Write([]int16{100, 5}, 0)
	for _, m := range back.Identify(pattern) {
		fmt.Printf("match at [%d, %d]\n", m.Start, m.End)
	}
	// Output:
	// [100 5 100 5 3 4]
	// match at [0, 1]
	// match at [2, 3]
}
