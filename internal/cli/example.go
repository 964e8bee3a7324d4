package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/output"
)

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleInput()
			if out == "-" {
				data, err := yaml.Marshal(example)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := output.SaveInput(example, out); err != nil {
				return fmt.Errorf("write example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input written: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "example_input.yaml", "destination file, - for stdout")
	return cmd
}
