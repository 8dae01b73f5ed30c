package format

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewProgressBar builds the cell-count progress bar shown on stderr when
// results stream to a file.
func NewProgressBar(totalCells int) *progressbar.ProgressBar {
	return progressbar.NewOptions(totalCells,
		progressbar.OptionSetDescription("Running cells"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
	)
}
