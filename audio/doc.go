// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives behind the import
// pipeline: the Source interface decoders produce, a cubic Resampler,
// a MonoMixer, and a decoder Registry.
//
// # Source
//
// All decoders yield a Source of interleaved float32 samples in
// [-1, 1]; processors wrap one Source in another, so stages chain:
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// ReadSamples returns io.EOF once the stream is finished; any other
// error indicates a problem with the source.
//
// # Collecting for the editor
//
// The editing layer works on flat []int16 slices at a fixed rate, so
// the usual terminal stage is CollectMono16:
//
//	pcm, err := audio.CollectMono16(src, 8000, 4096)
//
// # Registry
//
// A Registry maps format keys to decoders for callers that pick the
// decoder at run time:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	d, ok := reg.Get("wav")
package audio
