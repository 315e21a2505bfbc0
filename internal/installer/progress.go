package installer

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

const progressThrottle = 100 * time.Millisecond

// newProgressBar returns a byte counter bar; an unknown size (-1) renders a spinner.
func newProgressBar(w io.Writer, size int64, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription("downloading "+name),
		progressbar.OptionThrottle(progressThrottle),
		progressbar.OptionClearOnFinish(),
	)
}
