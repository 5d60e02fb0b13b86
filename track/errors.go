package track

import "errors"

var (
	ErrOutOfRange   = errors.New("range outside track bounds")
	ErrBufferShared = errors.New("backing buffer shared with another track")
)
