package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/voidshard/gradient"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	a := gradient.Random(nil)
	b := gradient.Random(nil)
	g, err := gradient.New(a, b, gradient.DefaultSteps, gradient.Logger(log))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = g.SavePNG(gradient.DefaultFilename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	log.Info().Stringer("start", a).Stringer("end", b).Str("file", gradient.DefaultFilename).Msg("gradient rendered")
}
