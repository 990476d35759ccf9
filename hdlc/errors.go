package hdlc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFrameStart is returned when a frame is empty or does not begin
	// with the frame delimiter.
	ErrMissingFrameStart = errors.New("missing frame start")

	// ErrMissingFrameEnd is returned when a frame does not end with the frame
	// delimiter, or is too short to hold both delimiters.
	ErrMissingFrameEnd = errors.New("missing frame end")

	// ErrUnexpectedFrameEnd is returned when an unescaped delimiter shows up
	// inside the body of a frame.
	ErrUnexpectedFrameEnd = errors.New("unexpected frame end")

	// ErrInvalidEscapeSequence is returned when an escape byte is followed by
	// something other than one of the two escaped forms.
	ErrInvalidEscapeSequence = errors.New("invalid escape sequence")

	// ErrTruncatedEscapeSequence is returned when the last byte of a frame's
	// body is an escape byte.
	ErrTruncatedEscapeSequence = errors.New("truncated escape sequence")

	// ErrDuplicateSpecialChar is returned when two of the four special
	// characters have the same value.
	ErrDuplicateSpecialChar = errors.New("duplicate special character")
)

// FrameError describes why a frame could not be decoded.  Offset is the index
// into the frame of the byte where the problem was detected.  Use errors.Is to
// compare against the Err* kinds above.
type FrameError struct {
	Offset int
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("hdlc: %v at offset %d", e.Err, e.Offset)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

func frameError(offset int, kind error) error {
	return &FrameError{Offset: offset, Err: kind}
}
