// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncodeHeaderLayout(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	var buf bytes.Buffer
	if err := Encode(&buf, 8000, samples); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()
	if len(raw) != headerSize+len(samples)*2 {
		t.Fatalf("encoded size = %d, want %d", len(raw), headerSize+len(samples)*2)
	}

	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Fatal("missing RIFF/WAVE magic")
	}
	if string(raw[12:16]) != "fmt " || string(raw[36:40]) != "data" {
		t.Fatal("missing fmt/data chunk markers")
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(raw[4:8]), 36 + 8},
		{"fmt chunk size", binary.LittleEndian.Uint32(raw[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(raw[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(raw[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(raw[24:28]), 8000},
		{"byte rate", binary.LittleEndian.Uint32(raw[28:32]), 16000},
		{"block align", uint32(binary.LittleEndian.Uint16(raw[32:34])), 2},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(raw[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(raw[40:44]), 8},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	// Samples are little-endian two's complement.
	if got := int16(binary.LittleEndian.Uint16(raw[44:46])); got != 100 {
		t.Errorf("first sample = %d, want 100", got)
	}
	if got := int16(binary.LittleEndian.Uint16(raw[46:48])); got != -100 {
		t.Errorf("second sample = %d, want -100", got)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	t.Parallel()

	samples := []int16{1, -2, 3, -4, 5}
	var a, b bytes.Buffer
	if err := Encode(&a, 8000, samples); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := Encode(&b, 8000, samples); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("identical input produced different bytes")
	}
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Encode(&buf, 8000, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != headerSize {
		t.Fatalf("empty encode wrote %d bytes, want just the %d-byte header", buf.Len(), headerSize)
	}
}

func TestEncodeLargeUsesChunkedWrites(t *testing.T) {
	t.Parallel()

	// More samples than one conversion chunk holds.
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, 8000, samples); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()[headerSize:]
	if len(raw) != len(samples)*2 {
		t.Fatalf("data size = %d, want %d", len(raw), len(samples)*2)
	}
	for i, want := range samples {
		if got := int16(binary.LittleEndian.Uint16(raw[2*i:])); got != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
	}
}
