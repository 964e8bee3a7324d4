package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/output"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		inputPath string
		toStdout  bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project FIRE, Semi-FI and Coast FI milestones for an input file",
		Example: "  ficalc project --input input.yaml\n" +
			"  ficalc project --input input.yaml --format html --output-dir reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(inputPath)
			if err != nil {
				return err
			}

			result, err := a.newEngine().Project(file.Projection)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}
			a.logger.Info("projection complete",
				zap.Int("years", result.Years()),
				zap.String("fire", output.FormatAge(result.FireAge)),
				zap.String("coast_fi", output.FormatAge(result.CoastFiAge)),
			)

			format := a.settings.Format
			if toStdout || strings.HasPrefix(output.NormalizeFormatName(format), "console") {
				f := output.GetFormatterByName(format)
				if f == nil {
					return output.UnsupportedFormatError(format)
				}
				data, err := f.Format(result)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			files, err := output.GenerateReport(result, format, a.settings.OutputDir)
			if err != nil {
				return err
			}
			for _, name := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "projection input file (yaml)")
	cmd.Flags().StringP("format", "f", "console", "report format (see `ficalc formats`)")
	cmd.Flags().String("output-dir", ".", "directory for report files")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the report to stdout instead of a file")
	_ = cmd.MarkFlagRequired("input")
	_ = a.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "  all (console + detailed-csv)")
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
