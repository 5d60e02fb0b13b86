package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrTruncated             = errors.New("truncated WAV stream")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrOnlyMonoSupported     = errors.New("only mono audio supported")
)
