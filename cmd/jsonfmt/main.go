// Command jsonfmt reads JSON from a file (or stdin) and rewrites it,
// compact or indented, to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ironjson/ironjson/internal/jsonparse"
	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

var (
	compact = flag.Bool("c", false, "compact output instead of indented")
	indent  = flag.String("indent", "\t", "indent string used for non-compact output")
	prefix  = flag.String("prefix", "", "line prefix used for non-compact output")
)

func init() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: jsonfmt [options] [file]\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	var (
		data []byte
		err  error
	)
	switch args := flag.Args(); len(args) {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "jsonfmt: at most one input file may be given")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		exitOnError(err)
	}

	var v jsonvalue.Value
	if err := jsonparse.Parse(data, &v); err != nil {
		exitOnError(err)
	}

	var out []byte
	if *compact {
		out = v.StringifyCompact(nil)
	} else {
		out = v.StringifyIndent(nil, *prefix, *indent)
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		exitOnError(err)
	}
}

func exitOnError(err error) {
	if pe, ok := err.(*jsonerr.ParseError); ok {
		fmt.Fprintf(os.Stderr, "jsonfmt: %s\n", pe)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
	os.Exit(1)
}
