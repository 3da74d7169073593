package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stegapp/stegapp/pkg/archive"
	"github.com/stegapp/stegapp/pkg/stego"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stegapp",
	Short: "Hide and recover files inside images using LSB steganography",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2) // cobra only returns here for usage errors
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, stego.ErrCapacityExceeded):
		return 3
	case errors.Is(err, stego.ErrDelimiterNotFound),
		errors.Is(err, stego.ErrImageTooSmall),
		errors.Is(err, stego.ErrCorruptStream),
		errors.Is(err, archive.ErrUnsafeArchivePath),
		errors.Is(err, archive.ErrArchiveCorrupt):
		return 4
	case errors.Is(err, os.ErrNotExist):
		return 4
	case errors.As(err, new(*os.PathError)), errors.As(err, new(*os.LinkError)):
		return 5
	case errors.Is(err, stego.ErrUnsupportedOutputFormat):
		return 5
	default:
		return 1
	}
}

func fail(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	os.Exit(exitCode(err))
}

func main() {
	Execute()
}
