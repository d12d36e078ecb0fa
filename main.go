package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/themuzzleflare/provenance/internal/cmd"
)

func main() {
	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable.
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stderr)
	if !ok || logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if _, debug := os.LookupEnv("DEBUG"); debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cmd.Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
