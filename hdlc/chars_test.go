package hdlc_test

import (
	"testing"

	"github.com/dcreager/hdlc-go/hdlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpecialChars(t *testing.T) {
	chars := hdlc.DefaultSpecialChars()
	assert.Equal(t, byte(0x7e), chars.FrameEnd)
	assert.Equal(t, byte(0x7d), chars.FrameEscape)
	assert.Equal(t, byte(0x5e), chars.EscapedFrameEnd)
	assert.Equal(t, byte(0x5d), chars.EscapedFrameEscape)
	assert.NoError(t, chars.Validate())
}

func TestNewSpecialChars(t *testing.T) {
	chars, err := hdlc.NewSpecialChars(0x71, 0x70, 0x51, 0x50)
	require.NoError(t, err)
	assert.Equal(t, hdlc.SpecialChars{
		FrameEnd:           0x71,
		FrameEscape:        0x70,
		EscapedFrameEnd:    0x51,
		EscapedFrameEscape: 0x50,
	}, chars)
	assert.Equal(t, "fend=0x71 fesc=0x70 tfend=0x51 tfesc=0x50", chars.String())
}

func TestNewSpecialCharsRejectsDuplicates(t *testing.T) {
	duplicates := [][4]byte{
		{0x7e, 0x7e, 0x5e, 0x5d},
		{0x7e, 0x7d, 0x7e, 0x5d},
		{0x7e, 0x7d, 0x5e, 0x7e},
		{0x7e, 0x7d, 0x7d, 0x5d},
		{0x7e, 0x7d, 0x5e, 0x7d},
		{0x7e, 0x7d, 0x5e, 0x5e},
		{0x00, 0x00, 0x00, 0x00},
	}
	for _, d := range duplicates {
		_, err := hdlc.NewSpecialChars(d[0], d[1], d[2], d[3])
		assert.Equal(t, hdlc.ErrDuplicateSpecialChar, err, "%x", d)
	}
}

func TestZeroSpecialCharsIsInvalid(t *testing.T) {
	var chars hdlc.SpecialChars
	assert.Equal(t, hdlc.ErrDuplicateSpecialChar, chars.Validate())

	_, err := hdlc.Encode([]byte("abc"), chars)
	assert.Equal(t, hdlc.ErrDuplicateSpecialChar, err)
	_, err = hdlc.Decode([]byte{0, 0}, chars)
	assert.Equal(t, hdlc.ErrDuplicateSpecialChar, err)
	_, err = hdlc.DecodeSlice([]byte{0, 0}, chars)
	assert.Equal(t, hdlc.ErrDuplicateSpecialChar, err)
}
