package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/packpix"
	"github.com/gogpu/packpix/binding"
	"github.com/gogpu/packpix/imageio"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print an image as nested JSON rows of channel triples",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("input", "i", "", "Input image")
	exportCmd.Flags().Bool("hsv", false, "Export HSV instead of RGB channels")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	hsv, _ := cmd.Flags().GetBool("hsv")

	img, _, err := imageio.Load(inputPath)
	if err != nil {
		return err
	}
	if hsv {
		img.ConvertColorSpace(packpix.HSV)
	}
	return binding.Encode(cmd.OutOrStdout(), img)
}
