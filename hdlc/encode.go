package hdlc

import "bytes"

// EncodedLen returns the exact length of the frame that Encode would produce
// for payload: the payload itself, one extra byte for every FrameEnd or
// FrameEscape that must be escaped, and the two delimiters.
func EncodedLen(payload []byte, chars SpecialChars) int {
	n := len(payload) + 2
	for _, b := range payload {
		if b == chars.FrameEnd || b == chars.FrameEscape {
			n++
		}
	}
	return n
}

// Encode returns a newly allocated frame containing payload.  The frame starts
// and ends with chars.FrameEnd, and neither FrameEnd nor FrameEscape appears
// unescaped anywhere in between.  An empty payload produces the two-byte frame
// {FrameEnd, FrameEnd}.  The only possible error is ErrDuplicateSpecialChar.
func Encode(payload []byte, chars SpecialChars) ([]byte, error) {
	if err := chars.Validate(); err != nil {
		return nil, err
	}
	return appendFrame(make([]byte, 0, EncodedLen(payload, chars)), payload, chars), nil
}

// AppendEncode appends the frame for payload to dst and returns the extended
// slice.
func AppendEncode(dst, payload []byte, chars SpecialChars) ([]byte, error) {
	if err := chars.Validate(); err != nil {
		return dst, err
	}
	return appendFrame(dst, payload, chars), nil
}

// EncodeTo writes the frame for payload into buf.
func EncodeTo(payload []byte, chars SpecialChars, buf *bytes.Buffer) error {
	if err := chars.Validate(); err != nil {
		return err
	}
	buf.Grow(EncodedLen(payload, chars))
	buf.WriteByte(chars.FrameEnd)
	// Copy unescaped runs in one go.
	start := 0
	for i, b := range payload {
		var escaped byte
		switch b {
		case chars.FrameEnd:
			escaped = chars.EscapedFrameEnd
		case chars.FrameEscape:
			escaped = chars.EscapedFrameEscape
		default:
			continue
		}
		buf.Write(payload[start:i])
		buf.WriteByte(chars.FrameEscape)
		buf.WriteByte(escaped)
		start = i + 1
	}
	buf.Write(payload[start:])
	buf.WriteByte(chars.FrameEnd)
	return nil
}

func appendFrame(dst, payload []byte, chars SpecialChars) []byte {
	dst = append(dst, chars.FrameEnd)
	for _, b := range payload {
		switch b {
		case chars.FrameEnd:
			dst = append(dst, chars.FrameEscape, chars.EscapedFrameEnd)
		case chars.FrameEscape:
			dst = append(dst, chars.FrameEscape, chars.EscapedFrameEscape)
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, chars.FrameEnd)
}
