package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixsvg/pixsvg"
	"github.com/pixsvg/pixsvg/utils"
)

func newClearCommand(configFlag *string) *cobra.Command {
	var outputDir string

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the converted SVG files and remove the output folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			setupColors(cfg.Color)

			if cmd.Flags().Changed("out") {
				cfg.OutputDir = outputDir
			}

			if _, err := os.Stat(cfg.OutputDir); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s folder to clear.\n", cfg.OutputDir)
				return nil
			}

			sum := pixsvg.ClearOutputs(cfg.OutputDir)
			fmt.Fprintln(cmd.OutOrStdout(),
				decorate(fmt.Sprintf("Cleared %s: %d file(s) removed.", cfg.OutputDir, sum.Removed),
					utils.SuccessMessage))
			if sum.Failed > 0 {
				fmt.Fprintln(cmd.OutOrStdout(),
					decorate(fmt.Sprintf("%d file(s) could not be removed.", sum.Failed),
						utils.ErrorMessage))
			}
			return nil
		},
	}

	clearCmd.Flags().StringVarP(&outputDir, "out", "o", "converted_svgs", "Output directory")

	return clearCmd
}
