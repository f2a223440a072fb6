package guard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"
)

// WriteReport writes a human-readable rendering of a validation error.
// Output is colorized only when w is a terminal. With Verbose settings each
// offending value is dumped after its message.
func WriteReport(w io.Writer, err error) {
	if err == nil {
		return
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	var rte *RuntimeTypeError
	if !errors.As(err, &rte) {
		fmt.Fprintln(w, err.Error())
		return
	}

	if color {
		fmt.Fprintln(w, colorBold+Header+colorReset)
	} else {
		fmt.Fprintln(w, Header)
	}

	verbose := Current().Verbose
	for _, s := range rte.Slots {
		if color {
			fmt.Fprintf(w, "\t%s%s%s\n", colorRed, s.Message(), colorReset)
		} else {
			fmt.Fprintf(w, "\t%s\n", s.Message())
		}
		if verbose {
			dump := strings.TrimRight(spew.Sdump(s.Value), "\n")
			for _, line := range strings.Split(dump, "\n") {
				fmt.Fprintf(w, "\t\t%s\n", line)
			}
		}
	}
}
