// Command pie is Pie's CLI: an interactive REPL plus a scripted loader
// for .pie.yaml session fixtures, in the teacher's direct stdlib-flag
// style (cmd/ailang/main.go), not a cobra-based one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sunholo/pie/internal/driver"
	"github.com/sunholo/pie/internal/repl"
)

var (
	Version = "dev"

	bold = color.New(color.Bold).SprintFunc()
	red  = color.New(color.FgRed).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		traceFlag   = flag.Bool("trace", false, "Print core/value trace of each REPL step")
		loadFlag    = flag.String("load", "", "Run a .pie.yaml session fixture before starting the REPL (its claims and defines are not carried into the REPL)")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("pie %s\n", bold(Version))
		return
	}

	r := repl.NewWithVersion(Version)
	if *traceFlag {
		r.EnableTrace()
	}

	if *loadFlag != "" {
		if err := loadFixture(*loadFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			os.Exit(driver.ExitCode(err))
		}
	}

	r.Start(os.Stdin, os.Stdout)
}

// loadFixture runs a .pie.yaml session fixture non-interactively in a
// session of its own, printing each check's normalized result, and
// returns the first failure; main turns that into an exit code via
// driver.ExitCode.
func loadFixture(path string) error {
	fixture, err := driver.LoadFixture(path)
	if err != nil {
		return err
	}
	session := driver.New()
	results, err := fixture.Run(session)
	for _, r := range results {
		fmt.Println(r.String())
	}
	return err
}
