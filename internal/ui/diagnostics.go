package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/golang/glog"

	"github.com/five82/gstate/internal/logtail"
)

const (
	diagnosticsLimit  = 200
	diagnosticsHeight = 8
)

// diagnostics tails the glog file so projection failures show up in the
// dashboard.
type diagnostics struct {
	path     string
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
}

func newDiagnostics(path string) *diagnostics {
	return &diagnostics{
		path:     path,
		viewport: viewport.New(80, diagnosticsHeight),
	}
}

func (d *diagnostics) resize(width int) {
	if width < 10 {
		width = 10
	}
	d.viewport.Width = width
	d.viewport.Height = diagnosticsHeight
}

// refresh re-reads the log tail. glog buffers writes, so it is flushed first.
func (d *diagnostics) refresh() {
	if d.path == "" {
		return
	}
	glog.Flush()
	d.entries, d.err = logtail.ReadEntries(d.path, diagnosticsLimit)
}

func (d *diagnostics) view(styles Styles) string {
	var b strings.Builder
	switch {
	case d.err != nil:
		b.WriteString(styles.DangerText.Render(d.err.Error()))
	case len(d.entries) == 0:
		b.WriteString(styles.MutedText.Render("no diagnostics yet"))
	default:
		for i, e := range d.entries {
			if i > 0 {
				b.WriteString("\n")
			}
			line := e.Message
			if e.Time != "" {
				line = e.Time[5:] + "  " + e.Message
			}
			b.WriteString(styles.SeverityStyle(e.Severity).Render(line))
		}
	}
	d.viewport.SetContent(b.String())
	d.viewport.GotoBottom()
	return d.viewport.View()
}
