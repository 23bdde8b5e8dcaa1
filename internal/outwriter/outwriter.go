// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/vegwatch/internal/contract"
	"golang.org/x/term"
)

// getMaxTableAOIWidth calculates the maximum width for AOI names in table
// output based on terminal width and table configuration.
func getMaxTableAOIWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, confidence, label, change,
	// means, sample count, date range) with borders and padding.
	baseWidth := 75

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable AOI width
		return 12
	}
	if available > 50 {
		// Maximum AOI width to prevent overly long names
		return 50
	}
	return available
}

// labelFor renders the severity label for a confidence score, honoring the
// color setting.
func labelFor(confidence float64, cfg *contract.Config) string {
	if cfg.Color {
		return contract.GetColorLabel(confidence)
	}
	return contract.GetPlainLabel(confidence)
}
