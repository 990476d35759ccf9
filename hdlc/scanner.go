package hdlc

import (
	"bufio"
	"bytes"
	"io"
)

// ScanFrames returns a bufio.SplitFunc that splits a byte stream into HDLC
// frames.  Each token is a complete frame, including its leading and trailing
// FrameEnd, ready to be passed to Decode or DecodeSlice.
//
// Bytes before the first FrameEnd are discarded.  A run of several FrameEnd
// bytes is treated as idle fill, and the frame starts at the last one, so an
// empty frame is never produced.  The FrameEnd that closes a frame is consumed
// along with it; a following frame needs its own opening FrameEnd.  A frame
// that is still open when the stream ends is dropped.
func ScanFrames(chars SpecialChars) bufio.SplitFunc {
	fend := chars.FrameEnd
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		start := bytes.IndexByte(data, fend)
		if start == -1 {
			// Nothing but garbage so far.
			return len(data), nil, nil
		}
		for start+1 < len(data) && data[start+1] == fend {
			start++
		}
		end := -1
		if start+1 < len(data) {
			end = bytes.IndexByte(data[start+1:], fend)
		}
		if end == -1 {
			if atEOF {
				return len(data), nil, nil
			}
			// Keep the opening delimiter and wait for more data.
			return start, nil, nil
		}
		end += start + 2
		return end, data[start:end], nil
	}
}

// Scanner reads consecutive frames from an io.Reader.  It is a thin wrapper
// around bufio.Scanner using ScanFrames, so the same rules apply: call Scan
// until it returns false, then check Err.
type Scanner struct {
	s     *bufio.Scanner
	chars SpecialChars
}

// NewScanner returns a Scanner that reads frames delimited by chars from r.
func NewScanner(r io.Reader, chars SpecialChars) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(ScanFrames(chars))
	return &Scanner{s: s, chars: chars}
}

// Buffer sets the initial buffer and the maximum frame size, as for
// bufio.Scanner.  It must be called before the first Scan.
func (s *Scanner) Buffer(buf []byte, max int) {
	s.s.Buffer(buf, max)
}

// Scan advances to the next frame.  It returns false at the end of the input
// or on a read error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Frame returns the raw bytes of the current frame, delimiters included.  The
// slice is only valid until the next call to Scan, and may be passed to
// DecodeSlice.
func (s *Scanner) Frame() []byte {
	return s.s.Bytes()
}

// Payload decodes the current frame into a newly allocated slice.
func (s *Scanner) Payload() ([]byte, error) {
	return Decode(s.s.Bytes(), s.chars)
}

// Err returns the first non-EOF error encountered while reading.  A frame
// larger than the buffer limit is reported as bufio.ErrTooLong.
func (s *Scanner) Err() error {
	return s.s.Err()
}
