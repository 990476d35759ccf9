package hdlc

// checkDelimiters verifies that frame is bracketed by chars.FrameEnd.
func checkDelimiters(frame []byte, chars SpecialChars) error {
	if err := chars.Validate(); err != nil {
		return err
	}
	if len(frame) < 1 || frame[0] != chars.FrameEnd {
		return frameError(0, ErrMissingFrameStart)
	}
	last := len(frame) - 1
	if len(frame) < 2 || frame[last] != chars.FrameEnd {
		return frameError(last, ErrMissingFrameEnd)
	}
	return nil
}

// Decode returns a newly allocated copy of the payload carried by frame.
// frame must contain exactly one frame: a leading FrameEnd, the escaped
// payload, and a trailing FrameEnd.  If frame is malformed, Decode returns a
// *FrameError wrapping one of ErrMissingFrameStart, ErrMissingFrameEnd,
// ErrUnexpectedFrameEnd, ErrInvalidEscapeSequence, or
// ErrTruncatedEscapeSequence, and no payload.
//
// An escape byte directly before the closing FrameEnd is reported as
// ErrTruncatedEscapeSequence.  An escape byte followed by a FrameEnd anywhere
// else is reported as ErrInvalidEscapeSequence.
func Decode(frame []byte, chars SpecialChars) ([]byte, error) {
	if err := checkDelimiters(frame, chars); err != nil {
		return nil, err
	}

	last := len(frame) - 1
	payload := make([]byte, 0, last-1)
	escaped := false
	for i := 1; i < last; i++ {
		b := frame[i]
		if escaped {
			switch b {
			case chars.EscapedFrameEnd:
				payload = append(payload, chars.FrameEnd)
			case chars.EscapedFrameEscape:
				payload = append(payload, chars.FrameEscape)
			default:
				return nil, frameError(i, ErrInvalidEscapeSequence)
			}
			escaped = false
			continue
		}
		switch b {
		case chars.FrameEscape:
			escaped = true
		case chars.FrameEnd:
			return nil, frameError(i, ErrUnexpectedFrameEnd)
		default:
			payload = append(payload, b)
		}
	}
	if escaped {
		return nil, frameError(last, ErrTruncatedEscapeSequence)
	}
	return payload, nil
}

// DecodeSlice decodes frame in place.  The payload is written over the front
// of frame, and the returned length n says how much of it is valid: the
// payload is frame[:n], and everything after it is garbage.  No memory is
// allocated.  The error cases are the same as for Decode; when an error is
// returned, the contents of frame are unspecified.
func DecodeSlice(frame []byte, chars SpecialChars) (int, error) {
	if err := checkDelimiters(frame, chars); err != nil {
		return 0, err
	}

	// The read cursor r starts past the leading delimiter and the write cursor
	// w starts at zero.  Each step reads at least one byte and writes at most
	// one, so w < r holds throughout and no unread byte is ever overwritten.
	last := len(frame) - 1
	w := 0
	for r := 1; r < last; r++ {
		b := frame[r]
		switch b {
		case chars.FrameEnd:
			return 0, frameError(r, ErrUnexpectedFrameEnd)
		case chars.FrameEscape:
			r++
			if r == last {
				return 0, frameError(r, ErrTruncatedEscapeSequence)
			}
			switch frame[r] {
			case chars.EscapedFrameEnd:
				b = chars.FrameEnd
			case chars.EscapedFrameEscape:
				b = chars.FrameEscape
			default:
				return 0, frameError(r, ErrInvalidEscapeSequence)
			}
		}
		frame[w] = b
		w++
	}
	return w, nil
}
