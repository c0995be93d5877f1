package main

import (
	"fmt"
	"time"

	"github.com/smendoza/leytext"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "run %s: fetching %s (mode=%s)\n", deps.RunID, c.URL, c.Mode)

	result, err := deps.Pipeline.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leytext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "articles:  %d\n", result.Articles)
	fmt.Fprintf(deps.Stdout, "elapsed:   %s\n", result.Elapsed.Round(time.Millisecond))
	if result.RawLocation != "" {
		fmt.Fprintf(deps.Stdout, "raw:       %s\n", result.RawLocation)
	}
	fmt.Fprintf(deps.Stdout, "processed: %s\n", result.ProcessedLocation)

	if result.Report != nil {
		printReport(deps, result.Report)
	}

	return nil
}

// printReport renders a quality report for operators. A failing report is
// advisory: the run itself still succeeded.
func printReport(deps *Dependencies, report *leytext.QualityReport) {
	fmt.Fprintf(deps.Stdout, "validation: %s (found %d of %d expected)\n",
		report.Status, report.Found, report.Expected)

	if len(report.Missing) > 0 {
		fmt.Fprintf(deps.Stdout, "  missing numbers:   %v\n", report.Missing)
	}
	if len(report.Duplicates) > 0 {
		fmt.Fprintf(deps.Stdout, "  duplicate numbers: %v\n", report.Duplicates)
	}
	for _, flag := range report.ContentFlags {
		fmt.Fprintf(deps.Stdout, "  article %d: %s (length=%d)\n",
			flag.ArticuloNumero, flag.Reason, flag.BodyLength)
	}
	for _, finding := range report.Findings {
		fmt.Fprintf(deps.Stdout, "  finding: %s\n", finding)
	}
}
