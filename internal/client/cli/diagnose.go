package cli

import (
	"context"
	"fmt"
	"os"
)

// Diagnose runs crop-disease analysis on a leaf image. The image path comes
// from the command arguments or, when absent, from an interactive prompt.
func (a *App) Diagnose(ctx context.Context, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		path, err = getSimpleText(a.reader, "Enter image path", os.Stdout)
		if err != nil {
			return err
		}
	}

	printlnFn("Analyzing image...")

	result, err := a.classifier.Analyze(ctx, path)
	if err != nil {
		a.log.Error(ctx, "analysis failed", "path", path, "error", err)
		printlnFn("Analysis failed: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Disease:    %s", result.Disease))
	printlnFn(fmt.Sprintf("Confidence: %.0f%%", result.Confidence))
	printlnFn(fmt.Sprintf("Severity:   %s", result.Severity))
	printlnFn(result.Description)

	if len(result.Treatment) > 0 {
		printlnFn("Treatment:")
		for i, step := range result.Treatment {
			printlnFn(fmt.Sprintf("  %d. %s", i+1, step))
		}
	}
	return nil
}
