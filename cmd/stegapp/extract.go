package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stegapp/stegapp/pkg/archive"
	"github.com/stegapp/stegapp/pkg/stego"
)

var (
	xImage  string
	xOutDir string
	xRawOut string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover a hidden archive from a stego image",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := stego.Extract(xImage)
		if err != nil {
			fail("extract failed", err)
		}

		if xRawOut != "" {
			if err := os.WriteFile(xRawOut, payload, 0o644); err != nil {
				fail("failed to write raw payload", err)
			}
			log.Info().Str("output", xRawOut).Int("bytes", len(payload)).Msg("raw payload written")
			return nil
		}

		if xOutDir == "" {
			return fmt.Errorf("usage: one of --out-dir or --raw-out is required")
		}
		if err := archive.Unpack(payload, xOutDir); err != nil {
			fail("failed to unpack payload", err)
		}
		log.Info().Str("out_dir", xOutDir).Msg("extract complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&xImage, "image", "i", "", "Path to stego image (required)")
	extractCmd.MarkFlagRequired("image")
	extractCmd.Flags().StringVar(&xOutDir, "out-dir", "", "Directory to unpack the recovered archive into")
	extractCmd.Flags().StringVar(&xRawOut, "raw-out", "", "Write the raw recovered payload bytes here instead of unpacking")
}
