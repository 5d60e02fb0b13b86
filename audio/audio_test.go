// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"sort"
	"testing"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("stub")
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &stubDecoder{name: "wav"}
	reg.Register("wav", dec)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get() failed to retrieve registered decoder")
	}
	if got != dec {
		t.Error("Get() returned a different decoder instance")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if _, ok := reg.Get("flac"); ok {
		t.Error("Get() returned ok for an unregistered format")
	}
}

func TestRegistryOverwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}
	reg.Register("wav", first)
	reg.Register("wav", second)

	got, ok := reg.Get("wav")
	if !ok || got != second {
		t.Error("Register() did not replace the existing decoder")
	}
}

func TestRegistryFormats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", &stubDecoder{})
	reg.Register("mp3", &stubDecoder{})
	reg.Register("ogg", &stubDecoder{})

	got := reg.Formats()
	sort.Strings(got)

	want := []string{"mp3", "ogg", "wav"}
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Formats() = %v, want %v", got, want)
		}
	}
}
