package main

import (
	"os"

	"github.com/gptscript-ai/cmd"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iri-io/iri-cli/pkg/cli"
)

func main() {
	// .env values feed the IRI_* flag defaults; a missing file is fine.
	_ = godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cmd.Main(cli.New())
}
