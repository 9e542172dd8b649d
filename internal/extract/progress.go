// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// progressInterval throttles progress redraws. Tests shorten it.
var progressInterval = 100 * time.Millisecond

// progress redraws a single status line in place while pages are scanned.
// The final page and abort are always drawn regardless of throttling.
type progress struct {
	w        io.Writer
	total    int
	lastDraw time.Time
	lastLen  int
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{w: w, total: total}
}

func (p *progress) start() {
	p.draw(0, true)
}

func (p *progress) update(page int) {
	p.draw(page, page == p.total)
}

func (p *progress) draw(page int, force bool) {
	if !force && time.Since(p.lastDraw) < progressInterval {
		return
	}
	p.lastDraw = time.Now()

	line := fmt.Sprintf("extracting tables: page %d/%d", page, p.total)
	pad := ""
	if n := p.lastLen - len(line); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(p.w, "\r%s%s", line, pad)
	p.lastLen = len(line)
}

// finish terminates the status line once the scan is complete.
func (p *progress) finish() {
	if p.lastLen > 0 {
		fmt.Fprintln(p.w)
	}
}

// abort wipes the status line so error output starts on a clean line.
func (p *progress) abort() {
	if p.lastLen == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.lastLen))
	p.lastLen = 0
}
