package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dcreager/hdlc-go/hdlc"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	FrameEnd           int `toml:"frame_end" yaml:"frame_end"`
	FrameEscape        int `toml:"frame_escape" yaml:"frame_escape"`
	EscapedFrameEnd    int `toml:"escaped_frame_end" yaml:"escaped_frame_end"`
	EscapedFrameEscape int `toml:"escaped_frame_escape" yaml:"escaped_frame_escape"`
}

// loadSpecialChars reads special characters from a .toml, .yaml or .yml file.
// Keys missing from the file keep their default values.
func loadSpecialChars(path string) (hdlc.SpecialChars, error) {
	def := hdlc.DefaultSpecialChars()
	raw := fileConfig{
		FrameEnd:           int(def.FrameEnd),
		FrameEscape:        int(def.FrameEscape),
		EscapedFrameEnd:    int(def.EscapedFrameEnd),
		EscapedFrameEscape: int(def.EscapedFrameEscape),
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return hdlc.SpecialChars{}, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return hdlc.SpecialChars{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return hdlc.SpecialChars{}, fmt.Errorf("load config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return hdlc.SpecialChars{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return hdlc.SpecialChars{}, fmt.Errorf("load config: unsupported extension %q", ext)
	}

	values := []struct {
		name  string
		value int
	}{
		{"frame_end", raw.FrameEnd},
		{"frame_escape", raw.FrameEscape},
		{"escaped_frame_end", raw.EscapedFrameEnd},
		{"escaped_frame_escape", raw.EscapedFrameEscape},
	}
	for _, v := range values {
		if v.value < 0 || v.value > 0xff {
			return hdlc.SpecialChars{}, fmt.Errorf("parse %s: %d is not a byte", v.name, v.value)
		}
	}

	chars, err := hdlc.NewSpecialChars(
		byte(raw.FrameEnd),
		byte(raw.FrameEscape),
		byte(raw.EscapedFrameEnd),
		byte(raw.EscapedFrameEscape),
	)
	if err != nil {
		return hdlc.SpecialChars{}, fmt.Errorf("load config: %w", err)
	}
	return chars, nil
}
