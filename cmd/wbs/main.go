package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wbs/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}
	defer app.Close()

	// The checklist UI needs a terminal on both ends; otherwise print it.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
