package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/algoscope/algoscope/pkg/builder"
)

// One renderer plus the console line printed once it lands.
type renderStep struct {
	render  func(context.Context) (string, error)
	caption string
}

func main() {
	fmt.Println("Algorithm Performance Analysis")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Generating performance analysis plots...")

	if err := run(context.Background()); err != nil {
		if errors.Is(err, builder.ErrChartOutputDir) {
			fmt.Println("Could not write the analysis plots: the output directory is missing or not writable.")
			fmt.Println("Create the directory, or point ALGOSCOPE_OUTPUT_DIR at a writable location, and rerun.")
		} else {
			fmt.Printf("Error generating plots: %v\n", err)
		}
		// The tool is illustrative; a partial run is reported, not failed.
		return
	}

	fmt.Println()
	fmt.Println("Analysis complete! Use these plots in your report.")
	fmt.Println()
	fmt.Println("To use your own data:")
	fmt.Println("1. Export measurements to CSV format")
	fmt.Println("2. Replace the samples in the dataset package")
	fmt.Println("3. Rebuild and rerun this tool")
}

func run(ctx context.Context) error {
	logger := builder.NewLogger(
		builder.LoggerWithLevel(builder.EnvOr("ALGOSCOPE_LOG_LEVEL", "error")),
	)

	chart := builder.NewChart(
		builder.ChartWithLogger(logger),
		builder.ChartWithOutputDir(builder.EnvOr("ALGOSCOPE_OUTPUT_DIR", ".")),
	)

	steps := []renderStep{
		{chart.RenderSortingAnalysis, "Sorting algorithm comparison"},
		{chart.RenderSearchAnalysis, "Search algorithm comparison"},
		{chart.RenderFibonacciAnalysis, "Fibonacci recursion analysis"},
		{chart.RenderComplexityCheatsheet, "Complexity reference chart"},
	}
	for _, step := range steps {
		path, err := step.render(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("✓ %s saved as '%s'\n", step.caption, filepath.Base(path))
	}
	return nil
}
