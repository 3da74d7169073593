package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stegapp/stegapp/pkg/archive"
	"github.com/stegapp/stegapp/pkg/stego"
)

var lImage string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the archive entries hidden in a stego image",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := stego.Extract(lImage)
		if err != nil {
			fail("extract failed", err)
		}

		entries, err := archive.List(payload)
		if err != nil {
			fail("failed to list payload", err)
		}

		if len(entries) == 0 {
			fmt.Println("(the archive is empty)")
			return nil
		}
		for _, e := range entries {
			kind := "file"
			switch e.Kind {
			case archive.KindFolder:
				kind = "dir"
			case archive.KindOther:
				kind = "other"
			}
			fmt.Printf("%-5s %s\n", kind, e.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&lImage, "image", "i", "", "Path to stego image (required)")
	listCmd.MarkFlagRequired("image")
}
