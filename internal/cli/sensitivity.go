package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/calculation"
	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/fipath/fi-calculator/internal/output"
)

type sensitivityFlags struct {
	input  string
	param  string
	min    string
	max    string
	steps  int
	format string
}

func newSensitivityCmd(a *app) *cobra.Command {
	flags := &sensitivityFlags{}

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep one input across a range and report milestone ages per value",
		Long: "Runs an independent projection for each value of one parameter.\n" +
			"Parameters: " + fmt.Sprint(domain.SensitivityParameterNames) + "\n" +
			"Without --param the sensitivity block of the input file is used.",
		Example: "  ficalc sensitivity --input input.yaml --param return_rate --min 4 --max 10 --steps 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(flags.input)
			if err != nil {
				return err
			}
			param, err := flags.parameter(file)
			if err != nil {
				return err
			}

			cache := calculation.NewMemoizingProjector(a.newEngine(), a.settings.CacheSize)
			analysis, err := calculation.RunSensitivity(cmd.Context(), cache, file.Projection, param)
			if err != nil {
				return fmt.Errorf("sensitivity failed: %w", err)
			}
			a.logger.Info("sensitivity complete",
				zap.String("parameter", param.Name),
				zap.Int("points", len(analysis.Points)),
			)

			data, err := output.FormatSensitivity(analysis, flags.format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "", "projection input file (yaml)")
	f.StringVar(&flags.param, "param", "", "parameter to sweep")
	f.StringVar(&flags.min, "min", "", "first sweep value")
	f.StringVar(&flags.max, "max", "", "last sweep value")
	f.IntVar(&flags.steps, "steps", 5, "number of sweep values")
	f.StringVarP(&flags.format, "format", "f", "console", "output format (console, csv, json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// parameter resolves the sweep from flags, falling back to the input file's block.
func (f *sensitivityFlags) parameter(file *config.InputFile) (domain.SensitivityParameter, error) {
	if f.param == "" {
		if file.Sensitivity == nil {
			return domain.SensitivityParameter{}, fmt.Errorf("no --param given and %s has no sensitivity block", f.input)
		}
		return *file.Sensitivity, nil
	}

	minValue, err := decimal.NewFromString(f.min)
	if err != nil {
		return domain.SensitivityParameter{}, fmt.Errorf("invalid --min %q: %w", f.min, err)
	}
	maxValue, err := decimal.NewFromString(f.max)
	if err != nil {
		return domain.SensitivityParameter{}, fmt.Errorf("invalid --max %q: %w", f.max, err)
	}
	return domain.SensitivityParameter{Name: f.param, MinValue: minValue, MaxValue: maxValue, Steps: f.steps}, nil
}
