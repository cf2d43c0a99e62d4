package kad

import "errors"

var (
	ErrTruncated             = errors.New("kad: truncated packet")
	ErrUnrecognizedFormat    = errors.New("kad: unrecognized format marker")
	ErrCompressedUnsupported = errors.New("kad: compressed packet not supported")
	ErrOpcodeMismatch        = errors.New("kad: opcode mismatch")
	ErrMalformedPayload      = errors.New("kad: malformed payload")
)
