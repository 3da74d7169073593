package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stegapp/stegapp/pkg/stego"
)

var cImage string

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Report how many payload bytes an image can hold",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, h, err := stego.ImageDimensions(cImage)
		if err != nil {
			fail("failed to read image", err)
		}
		fmt.Println(stego.Capacity(w, h))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacityCmd.Flags().StringVarP(&cImage, "image", "i", "", "Path to carrier image (required)")
	capacityCmd.MarkFlagRequired("image")
}
