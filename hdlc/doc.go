// Package hdlc provides a Go implementation of HDLC-style byte stuffing.  A
// payload is framed by a delimiter byte (FEND, 0x7e by default), and any
// occurrence of the delimiter or of the escape byte (FESC, 0x7d) inside the
// payload is replaced by a two-byte escape sequence, so that the delimiter
// only ever appears at frame boundaries.
//
// Checksums, control fields, and flow control are not handled here; they
// belong to whatever protocol layer sits on top of these frames.
package hdlc
