package ui

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/brogergvhs/errgen/internal/util"
)

// FetchProgress renders a single download bar for the docs page body.
type FetchProgress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func NewFetchProgress(label string) *FetchProgress {
	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(os.Stdout),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := p.New(
		0,
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(label+"  "),
		),

		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.Any(func(st decor.Statistics) string {
				return " | " + util.Human(st.Current)
			}),
		),
	)

	return &FetchProgress{p: p, bar: bar}
}

// Reader wraps the response body so reads advance the bar. A non-positive
// total (unknown Content-Length) leaves the bar indeterminate until Done.
func (f *FetchProgress) Reader(r io.Reader, total int64) io.ReadCloser {
	if total > 0 {
		f.bar.SetTotal(total, false)
	}

	return f.bar.ProxyReader(r)
}

func (f *FetchProgress) Done() {
	// total <= 0 snaps the total to whatever was read
	f.bar.SetTotal(-1, true)
	f.p.Wait()
}
