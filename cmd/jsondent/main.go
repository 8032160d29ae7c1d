// Command jsondent re-indents JSON from files or standard input.
//
// Each input is parsed once and re-emitted indented on standard output.
// A failing input gets a diagnostic on standard error and does not stop
// the remaining inputs; the exit status is 1 if any input failed.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/peadar/jsondent"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("jsondent", "Re-indent JSON from files or standard input.")
	indent := app.Flag("indent", "Spaces per nesting level.").Short('i').Default("4").Int()
	floats := app.Flag("float", "Render numbers through float64 instead of exactly.").Short('f').Bool()
	files := app.Arg("files", "Input files; '-' or none reads standard input.").Strings()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	mode := jsondent.Exact
	if *floats {
		mode = jsondent.Floating
	}

	inputs := *files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	out := bufio.NewWriter(os.Stdout)
	failed := false
	for _, name := range inputs {
		if err := indentOne(out, name, *indent, mode); err != nil {
			failed = true
			display := name
			if name == "-" {
				display = "(stdin)"
			}
			level.Error(logger).Log("msg", "invalid JSON", "input", color.RedString(display), "err", err)
		}
	}
	if err := out.Flush(); err != nil {
		level.Error(logger).Log("msg", "writing output", "err", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func indentOne(out *bufio.Writer, name string, width int, mode jsondent.NumberMode) error {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	c := jsondent.NewCursor(r)
	if err := c.SkipBOM(); err != nil {
		return err
	}
	text, err := jsondent.PrettyPrint(c, width, mode)
	if err != nil {
		return err
	}
	t, err := c.Classify()
	if err != nil {
		return err
	}
	if t != jsondent.EOF {
		return fmt.Errorf("trailing %s after value at offset %d", t, c.Offset())
	}

	if _, err := out.WriteString(text); err != nil {
		return err
	}
	return out.WriteByte('\n')
}
