package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixsvg/pixsvg/utils"
)

const helpBanner = `
┌─┐┬─┐ ┬┌─┐┬  ┌─┐┬  ┬┌─┐
├─┘│┌┴┬┘├┤ │  └─┐└┐┌┘│ ┬
┴  ┴┴ └─└─┘┴─┘└─┘ └┘ └─┘

Pixel-perfect image to SVG converter.
    Version: %s
`

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, decorate(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "pixsvg",
		Short:         "Pixel-perfect image to SVG converter",
		Long:          fmt.Sprintf(helpBanner, version()),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConvertCommand(&configFlag))
	rootCmd.AddCommand(newClearCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func version() string {
	if Version == "" {
		return "devel"
	}
	return Version
}
