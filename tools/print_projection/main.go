package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fipath/fi-calculator/internal/calculation"
	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/output"
)

// Prints the raw yearly balances of the built-in example input.
func main() {
	in := config.NewInputParser().CreateExampleInput().Projection
	res, err := calculation.NewProjectionEngine().Project(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("real rate: %s\n", res.RealRate.StringFixed(6))
	fmt.Printf("targets: fire=%s base=%s cushion=%s semi=%s coast=%s\n",
		res.Targets.FireTarget.StringFixed(2),
		res.Targets.FireTargetBase.StringFixed(2),
		res.Targets.CashCushionTarget.StringFixed(2),
		res.Targets.SemiFiTarget.StringFixed(2),
		res.Targets.CoastTarget.StringFixed(2),
	)
	for _, row := range output.YearlyRows(res) {
		labels := make([]string, 0, len(row.Reached))
		for _, m := range row.Reached {
			labels = append(labels, string(m))
		}
		fmt.Printf("%3d age=%d fire=%s semi=%s coast=%s %s\n",
			row.Offset, row.Age,
			row.FIRE.StringFixed(4), row.SemiFI.StringFixed(4), row.CoastFI.StringFixed(4),
			strings.Join(labels, ","))
	}
}
