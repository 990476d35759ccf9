package hdlc

import (
	"bytes"
)

// FrameBuilder makes it easier to build up the payloads of several frames,
// which are then written into a buffer as consecutive HDLC frames.  To build
// up an individual payload, just use the FrameBuilder as a bytes.Buffer.  Once
// a payload is done, call FinishFrame.  Once you are done with all payloads,
// call Encode to get the framed representation of everything.
type FrameBuilder struct {
	bytes.Buffer
	start   int
	indices []index
}

type index struct {
	start, end int
}

// FinishFrame marks the end of the current payload.  Nothing is encoded until
// you call Encode.
func (fb *FrameBuilder) FinishFrame() {
	end := fb.Len()
	fb.indices = append(fb.indices, index{fb.start, end})
	fb.start = end
}

// Frames returns the number of finished payloads.
func (fb *FrameBuilder) Frames() int {
	return len(fb.indices)
}

// Encode writes every finished payload into dest as its own frame, in the
// order they were finished.  Bytes written after the last FinishFrame are
// ignored.
func (fb *FrameBuilder) Encode(chars SpecialChars, dest *bytes.Buffer) error {
	payloads := fb.Bytes()
	for _, index := range fb.indices {
		if err := EncodeTo(payloads[index.start:index.end], chars, dest); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards all payloads, finished or not.
func (fb *FrameBuilder) Reset() {
	fb.Buffer.Reset()
	fb.start = 0
	fb.indices = fb.indices[:0]
}
