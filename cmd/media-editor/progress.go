package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// progressPrinter redraws a percent line on terminals and stays quiet otherwise
type progressPrinter struct {
	w       io.Writer
	enabled bool
	last    int
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, enabled: isTerminal(w), last: -1}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Update is an edit progress callback
func (p *progressPrinter) Update(progress float64) {
	if !p.enabled {
		return
	}
	percent := int(progress * 100)
	if percent == p.last {
		return
	}
	p.last = percent
	fmt.Fprintf(p.w, "\r%3d%%", percent)
}

// Done ends the percent line
func (p *progressPrinter) Done() {
	if p.enabled && p.last >= 0 {
		fmt.Fprintln(p.w)
	}
}
