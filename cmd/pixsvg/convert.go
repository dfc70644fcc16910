package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixsvg/pixsvg"
	"github.com/pixsvg/pixsvg/utils"
)

func newConvertCommand(configFlag *string) *cobra.Command {
	var (
		outputDir string
		workers   int
	)

	convertCmd := &cobra.Command{
		Use:   "convert [files or folders]",
		Short: "Convert raster images to pixel-exact SVG files",
		Long: `Convert raster images to pixel-exact SVG files made of <rect> runs.

Folder arguments contribute their top-level images only; subfolders are
ignored. Outputs that already exist are skipped, never overwritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			setupColors(cfg.Color)

			if cmd.Flags().Changed("out") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("conc") {
				cfg.Workers = workers
			}

			paths, err := collectPaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("no supported images among the selected paths")
			}

			return runConvert(cmd.OutOrStdout(), cfg, paths)
		},
	}

	convertCmd.Flags().StringVarP(&outputDir, "out", "o", "converted_svgs", "Output directory")
	convertCmd.Flags().IntVar(&workers, "conc", 0, "Number of files to process concurrently")

	return convertCmd
}

func runConvert(w io.Writer, cfg config, paths []string) error {
	proc := &pixsvg.Processor{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
	}

	// Stop between files on CTRL-C instead of killing the process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spinnerText := fmt.Sprintf("%s %s",
		decorate("⚡ PIXSVG", utils.StatusMessage),
		decorate("is converting the images...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, colorsEnabled)
	spinner.Start()

	now := time.Now()
	outcomes, err := proc.ConvertBatch(ctx, paths)
	spinner.Stop()
	if err != nil {
		return err
	}

	printOutcomes(w, outcomes)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		decorate(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// collectPaths expands the command arguments into the absolute input paths
// of the batch. A folder argument contributes its top-level supported images
// only, an explicit file argument is kept when its extension is supported,
// and duplicates are dropped while preserving first-seen order.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", arg, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(abs)
			if err != nil {
				return nil, fmt.Errorf("could not read the folder %s: %w", arg, err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if pixsvg.SupportedExtension(filepath.Ext(entry.Name())) {
					add(filepath.Join(abs, entry.Name()))
				}
			}
			continue
		}

		if pixsvg.SupportedExtension(filepath.Ext(abs)) {
			add(abs)
		}
	}
	return paths, nil
}

// printOutcomes renders the per-file results table followed by the batch
// summary counts.
func printOutcomes(w io.Writer, outcomes []pixsvg.Outcome) {
	rows := make([][]string, 0, len(outcomes))
	var converted, skipped, failed int

	for _, o := range outcomes {
		var status string
		switch o.Status {
		case pixsvg.StatusConverted:
			converted++
			status = decorate(o.Status.String(), utils.SuccessMessage)
		case pixsvg.StatusSkipped:
			skipped++
			status = decorate(o.Status.String(), utils.StatusMessage)
		default:
			failed++
			status = decorate(o.Status.String(), utils.ErrorMessage)
		}
		rows = append(rows, []string{filepath.Base(o.Input), status, o.Detail()})
	}

	fmt.Fprintln(w, renderTable([]string{"File", "Status", "Detail"}, rows))
	fmt.Fprintf(w, "%d converted, %d skipped, %d failed\n", converted, skipped, failed)
}
