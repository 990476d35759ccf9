package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dcreager/hdlc-go/hdlc"
	"github.com/rs/zerolog"
)

type options struct {
	mode  string
	chars hdlc.SpecialChars
	hex   bool
}

func run(opts options, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	if opts.hex {
		text, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		raw, err := hex.DecodeString(string(bytes.Join(bytes.Fields(text), nil)))
		if err != nil {
			return fmt.Errorf("parse hex input: %w", err)
		}
		in = bytes.NewReader(raw)
	}

	switch opts.mode {
	case "encode":
		return encode(opts, in, out, logger)
	case "decode":
		return decode(opts, in, out, logger)
	default:
		return fmt.Errorf("unknown mode: %s", opts.mode)
	}
}

func encode(opts options, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	frame, err := hdlc.Encode(payload, opts.chars)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	logger.Debug().Int("payload", len(payload)).Int("frame", len(frame)).Msg("encoded frame")
	return writeOutput(opts, out, frame)
}

func decode(opts options, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	var frames, rejected int
	s := hdlc.NewScanner(in, opts.chars)
	for s.Scan() {
		frames++
		n, err := hdlc.DecodeSlice(s.Frame(), opts.chars)
		if err != nil {
			rejected++
			logger.Warn().Int("frame", frames).Msgf("malformed frame: %v", err)
			continue
		}
		if err := writeOutput(opts, out, s.Frame()[:n]); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read frames: %w", err)
	}
	logger.Info().Int("frames", frames).Int("rejected", rejected).Msg("decoded input")
	return nil
}

func writeOutput(opts options, out io.Writer, data []byte) error {
	var err error
	if opts.hex {
		_, err = fmt.Fprintln(out, hex.EncodeToString(data))
	} else {
		_, err = out.Write(data)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
