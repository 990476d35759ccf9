package main

import (
	"flag"
	"os"

	"github.com/dcreager/hdlc-go/hdlc"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "encode", "mode: encode | decode")
	configPath := flag.String("config", "", "TOML or YAML file overriding the special characters")
	hexIO := flag.Bool("hex", false, "read and write hex text instead of raw bytes")
	level := flag.String("log-level", "info", "log level: debug | info | warn | error")
	flag.Parse()

	logger := initLogger("hdlcframe", *level)

	chars := hdlc.DefaultSpecialChars()
	if *configPath != "" {
		var err error
		chars, err = loadSpecialChars(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		log.Debug().Str("path", *configPath).Stringer("chars", chars).Msg("loaded config")
	}

	opts := options{mode: *mode, chars: chars, hex: *hexIO}
	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("hdlcframe failed")
	}
}
