package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// DescEvaluating labels the batch progress bar
const DescEvaluating = "Evaluating"

// NewProgressBar creates a consistently styled progress bar writing to w.
//
// A negative total switches the bar to spinner mode, used when the number of
// items is not known up front (for example when reading test ids from stdin).
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
