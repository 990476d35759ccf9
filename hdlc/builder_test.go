package hdlc_test

import (
	"bytes"
	"testing"

	"github.com/dcreager/hdlc-go/hdlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkFrameBuilder(t *testing.T, inputList []string) {
	chars := hdlc.DefaultSpecialChars()
	var builder hdlc.FrameBuilder
	var encoded bytes.Buffer
	for _, str := range inputList {
		builder.WriteString(str)
		builder.FinishFrame()
	}
	assert.Equal(t, len(inputList), builder.Frames())
	require.NoError(t, builder.Encode(chars, &encoded))

	scanner := hdlc.NewScanner(&encoded, chars)
	actual := []string{}
	for scanner.Scan() {
		decoded, err := scanner.Payload()
		require.NoError(t, err)
		actual = append(actual, string(decoded))
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, inputList, actual)
}

func TestFrameBuilder(t *testing.T) {
	testCases := [][]string{
		{},
		{"hello", "there"},
		{"what is\x7e\x7dgoing on"},
		{"\x7e", "\x7d\x7d", "\x5e\x5d"},
	}
	for i := range testCases {
		checkFrameBuilder(t, testCases[i])
	}
}

func TestFrameBuilderIgnoresUnfinished(t *testing.T) {
	chars := hdlc.DefaultSpecialChars()
	var builder hdlc.FrameBuilder
	builder.WriteString("done")
	builder.FinishFrame()
	builder.WriteString("pending")

	var encoded bytes.Buffer
	require.NoError(t, builder.Encode(chars, &encoded))
	assert.Equal(t, "\x7edone\x7e", encoded.String())

	builder.Reset()
	assert.Equal(t, 0, builder.Frames())
	assert.Equal(t, 0, builder.Len())
}
