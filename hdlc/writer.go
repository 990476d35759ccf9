package hdlc

import "io"

// Writer frames payloads onto an underlying io.Writer.  Every call to Write or
// WriteFrame produces exactly one frame, written with a single call to the
// underlying writer.
type Writer struct {
	w     io.Writer
	chars SpecialChars
	buf   []byte
}

// NewWriter returns a Writer that frames payloads with chars and writes them
// to w.
func NewWriter(w io.Writer, chars SpecialChars) *Writer {
	return &Writer{w: w, chars: chars}
}

// WriteFrame encodes payload as one frame and writes it out.
func (fw *Writer) WriteFrame(payload []byte) error {
	frame, err := AppendEncode(fw.buf[:0], payload, fw.chars)
	if err != nil {
		return err
	}
	fw.buf = frame
	_, err = fw.w.Write(frame)
	return err
}

// Write implements io.Writer.  p is written as a single frame, and on success
// len(p) is returned, not the number of framed bytes.
func (fw *Writer) Write(p []byte) (int, error) {
	if err := fw.WriteFrame(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
