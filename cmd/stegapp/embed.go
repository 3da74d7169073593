package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stegapp/stegapp/pkg/archive"
	"github.com/stegapp/stegapp/pkg/random"
	"github.com/stegapp/stegapp/pkg/stego"
)

var (
	eImage      string
	eOut        string
	ePayloadDir string
	eFiles      []string
	eMessage    string
	eNoExternal bool
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Conceal files, folders, or a message in an image",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := buildPayload()
		if err != nil {
			return err
		}

		rng := random.New(!eNoExternal)
		if err := stego.Embed(eImage, payload, eOut, rng); err != nil {
			fail("embed failed", err)
		}
		log.Info().Str("output", eOut).Msg("embed complete")
		return nil
	},
}

func buildPayload() ([]byte, error) {
	if eMessage != "" {
		return []byte(eMessage), nil
	}

	var files, folders []string
	if ePayloadDir != "" {
		folders = append(folders, ePayloadDir)
	}
	files = append(files, eFiles...)

	if len(files) == 0 && len(folders) == 0 {
		return nil, fmt.Errorf("usage: one of --message, --file, or --payload-dir is required")
	}
	blob, err := archive.Pack(files, folders)
	if err != nil {
		fail("failed to pack payload", err)
	}
	return blob, nil
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&eImage, "image", "i", "", "Path to carrier image (required)")
	embedCmd.MarkFlagRequired("image")
	embedCmd.Flags().StringVarP(&eOut, "out", "o", "", "Output path for the stego image (required)")
	embedCmd.MarkFlagRequired("out")
	embedCmd.Flags().StringVar(&ePayloadDir, "payload-dir", "", "Folder to pack and conceal")
	embedCmd.Flags().StringSliceVar(&eFiles, "file", nil, "File to pack and conceal (repeatable)")
	embedCmd.Flags().StringVarP(&eMessage, "message", "m", "", "Raw text message to conceal (bypasses the archive codec)")
	embedCmd.Flags().BoolVar(&eNoExternal, "no-external-rng", false, "Skip the external QRNG, use crypto/rand directly")
}
