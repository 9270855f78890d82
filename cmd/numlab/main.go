// Command numlab runs a YAML file of numerical scenarios against numlib.
//
// Usage:
//
//	numlab -f scenarios.yaml [-plot out/] [-format svg] [-v]
//
// Each scenario prints one line. Failing scenarios are reported with their
// error kind and the run continues; the exit status is 1 if any failed.
// With -plot, cooling and poly_fit scenarios are also drawn into the
// directory, one file per scenario.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/numlib/internal/chart"
	"github.com/katalvlaran/numlib/internal/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "numlab: ", 0)

	fs := flag.NewFlagSet("numlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "scenarios.yaml", "scenario file to run")
	plotDir := fs.String("plot", "", "directory for charts (disabled when empty)")
	format := fs.String("format", "svg", "chart format: svg, png, pdf, eps")
	verbose := fs.Bool("v", false, "log progress for every scenario")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := scenario.LoadFile(*file)
	if err != nil {
		logger.Print(err)

		return 1
	}
	if *plotDir != "" {
		if err = os.MkdirAll(*plotDir, 0o755); err != nil {
			logger.Print(err)

			return 1
		}
	}

	failed := 0
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if *verbose {
			logger.Printf("running %q (%s)", sc.Name, sc.Kind())
		}
		res := scenario.Run(sc)
		fmt.Fprintln(stdout, res)
		if res.Err != nil {
			failed++

			continue
		}
		if *plotDir == "" || res.Chart == nil {
			continue
		}
		path := filepath.Join(*plotDir, slug(res.Name)+"."+*format)
		if err = chart.Save(*res.Chart, path); err != nil {
			logger.Print(err)
			failed++

			continue
		}
		if *verbose {
			logger.Printf("wrote %s", path)
		}
	}

	if failed > 0 {
		logger.Printf("%d of %d scenarios failed", failed, len(f.Scenarios))

		return 1
	}

	return 0
}

// slug turns a scenario name into a file name.
func slug(name string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	s = strings.Trim(s, "-")
	if s == "" {
		return "scenario"
	}

	return s
}
