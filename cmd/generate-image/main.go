package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/youruser/imagegen/internal/compositor"
	"github.com/youruser/imagegen/internal/job"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: generate-image <input_json_path> <output_path>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	j, err := job.Load(inputPath)
	if err != nil {
		if errors.Is(err, job.ErrMissingTemplateURL) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal().Err(err).Str("input", inputPath).Msg("failed to load job")
	}

	comp := compositor.New(&http.Client{Timeout: 30 * time.Second})
	if err := comp.Run(context.Background(), j, outputPath); err != nil {
		log.Fatal().Err(err).Str("output", outputPath).Msg("failed to generate image")
	}
}
