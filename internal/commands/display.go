package commands

import (
	"fmt"
	"io"

	"github.com/alan/recent-activity/internal/reconciler"
)

// FormatResult creates a one-line summary of a run
func FormatResult(result *reconciler.Result) string {
	switch result.Outcome {
	case reconciler.OutcomeWritten:
		return fmt.Sprintf("✅ %s (%d activities)\n", result.Message, len(result.Lines))
	case reconciler.OutcomePreview:
		return fmt.Sprintf("👀 %s (%d activities)\n", result.Message, len(result.Lines))
	default:
		return fmt.Sprintf("ℹ️  %s\n", result.Message)
	}
}

// DisplayResult prints the run summary. Dry runs also print the rendered document.
func DisplayResult(w io.Writer, result *reconciler.Result) {
	fmt.Fprint(w, FormatResult(result))
	if result.Outcome == reconciler.OutcomePreview {
		fmt.Fprintln(w, result.Document)
	}
}
