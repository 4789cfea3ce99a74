// Released under an MIT license. See LICENSE.

// Package options parses the diy command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the diy version reported by -v.
const Version = "diy 0.3.0"

//nolint:gochecknoglobals
var (
	usage = `diy

Usage:
  diy [-b] [-i] SCRIPT...
  diy [-b] -c COMMAND
  diy [-b] [-s]
  diy -h
  diy -v

Arguments:
  SCRIPT     Path to a diy program. Programs are run in order.

Options:
  -b, --bare             Do not load the prelude.
  -c, --command=COMMAND  Evaluate COMMAND and print each result.
  -i, --interactive      Start the interactive loop after running scripts.
  -s, --stdin            Read the program from stdin.
  -h, --help             Display this help.
  -v, --version          Print diy version.

If diy's stdin is a terminal, and diy was invoked with no script or
command, the interactive loop is started. Otherwise the program is read
from stdin and results are not printed.
`
)

// T holds the parsed options.
type T struct {
	Bare        bool
	Command     string
	Interactive bool
	Scripts     []string
	Stdin       bool
}

type options = T

// Parse parses argv (without the program name). It exits on -h, -v or a
// usage error, as docopt does.
func Parse(argv []string) *T {
	parser := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	return fromOpts(opts, isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func fromOpts(opts docopt.Opts, terminal bool) *T {
	o := &options{}

	o.Bare, _ = opts.Bool("--bare")
	o.Command, _ = opts.String("--command")
	o.Stdin, _ = opts.Bool("--stdin")

	o.Scripts, _ = opts["SCRIPT"].([]string)

	interactive, _ := opts.Bool("--interactive")

	switch {
	case len(o.Scripts) > 0:
		o.Interactive = interactive
	case o.Command != "":
		o.Interactive = false
	default:
		o.Interactive = terminal && !o.Stdin
		o.Stdin = !o.Interactive
	}

	return o
}
