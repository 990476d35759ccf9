package hdlc

import "fmt"

// Default special characters, as used by standard HDLC and PPP framing.
const (
	DefaultFrameEnd           = 0x7e
	DefaultFrameEscape        = 0x7d
	DefaultEscapedFrameEnd    = 0x5e
	DefaultEscapedFrameEscape = 0x5d
)

// SpecialChars holds the four reserved byte values used to frame and escape a
// payload.  All four must be different.  Values built as struct literals are
// checked each time they are passed to Encode or Decode; NewSpecialChars
// checks them up front.
type SpecialChars struct {
	// FrameEnd marks the start and end of every frame.
	FrameEnd byte
	// FrameEscape introduces a two-byte escape sequence.
	FrameEscape byte
	// EscapedFrameEnd follows FrameEscape to stand for a literal FrameEnd.
	EscapedFrameEnd byte
	// EscapedFrameEscape follows FrameEscape to stand for a literal
	// FrameEscape.
	EscapedFrameEscape byte
}

// DefaultSpecialChars returns the standard HDLC special characters.
func DefaultSpecialChars() SpecialChars {
	return SpecialChars{
		FrameEnd:           DefaultFrameEnd,
		FrameEscape:        DefaultFrameEscape,
		EscapedFrameEnd:    DefaultEscapedFrameEnd,
		EscapedFrameEscape: DefaultEscapedFrameEscape,
	}
}

// NewSpecialChars builds a custom set of special characters, for talking to
// peers that use a nonstandard framing convention.  It returns
// ErrDuplicateSpecialChar if any two values are equal.
func NewSpecialChars(frameEnd, frameEscape, escapedFrameEnd, escapedFrameEscape byte) (SpecialChars, error) {
	chars := SpecialChars{
		FrameEnd:           frameEnd,
		FrameEscape:        frameEscape,
		EscapedFrameEnd:    escapedFrameEnd,
		EscapedFrameEscape: escapedFrameEscape,
	}
	if err := chars.Validate(); err != nil {
		return SpecialChars{}, err
	}
	return chars, nil
}

// Validate returns ErrDuplicateSpecialChar unless all four values are
// distinct.
func (c SpecialChars) Validate() error {
	if c.FrameEnd == c.FrameEscape ||
		c.FrameEnd == c.EscapedFrameEnd ||
		c.FrameEnd == c.EscapedFrameEscape ||
		c.FrameEscape == c.EscapedFrameEnd ||
		c.FrameEscape == c.EscapedFrameEscape ||
		c.EscapedFrameEnd == c.EscapedFrameEscape {
		return ErrDuplicateSpecialChar
	}
	return nil
}

func (c SpecialChars) String() string {
	return fmt.Sprintf("fend=0x%02x fesc=0x%02x tfend=0x%02x tfesc=0x%02x",
		c.FrameEnd, c.FrameEscape, c.EscapedFrameEnd, c.EscapedFrameEscape)
}
