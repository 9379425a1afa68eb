package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line. Setting --name selects the
// one-shot CLI mode; otherwise the binary serves HTTP.
type cliFlags struct {
	name    string
	out     string
	config  string
	addr    string
	verbose bool
}

func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("pdfgen", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVar(&f.name, "name", "", "template name: welcome, contract, or billing-invoice (runs one-shot CLI mode)")
	fs.StringVar(&f.out, "out", "", "output path in CLI mode (default: derived under the results directory)")
	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.addr, "addr", "", "listen address in server mode (overrides config)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
