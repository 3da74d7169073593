package stego

import "errors"

var (
	ErrImageTooSmall           = errors.New("stego: image too small for seed header")
	ErrCapacityExceeded        = errors.New("stego: payload exceeds image capacity")
	ErrDelimiterNotFound       = errors.New("stego: end-of-payload delimiter not found")
	ErrCorruptStream           = errors.New("stego: extracted bit count is not byte-aligned")
	ErrUnsupportedOutputFormat = errors.New("stego: output format does not preserve pixel LSBs")
)
