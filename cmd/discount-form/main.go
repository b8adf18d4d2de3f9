package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eshaffer321/discount-form/internal/cli"
	"github.com/eshaffer321/discount-form/internal/infrastructure/config"
)

func main() {
	var configFile string

	// Global flags
	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file path")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadOrEnvWithPath(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: load config: %v\n", err)
		os.Exit(1)
	}

	subcommand, subArgs := args[0], args[1:]

	switch subcommand {
	case "serve":
		var flags *cli.ServeFlags
		if flags, err = cli.ParseServeFlags(subArgs, os.Stderr); err == nil {
			err = cli.RunServe(cfg, flags)
		}
	case "calc":
		var flags *cli.CalcFlags
		if flags, err = cli.ParseCalcFlags(subArgs, os.Stderr); err == nil {
			err = cli.RunCalc(cfg, flags, os.Stdout)
		}
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Discount Splitter")
	fmt.Fprintln(os.Stderr, "=================")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: discount-form [-config FILE] <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  serve  Serve the worksheet form and JSON API")
	fmt.Fprintln(os.Stderr, "         -port N     Port to listen on")
	fmt.Fprintln(os.Stderr, "         -verbose    Debug logging")
	fmt.Fprintln(os.Stderr, "  calc   Split a discounted total across items")
	fmt.Fprintln(os.Stderr, "         -item P[xQ] Line item, repeatable (e.g. -item 10.000x2)")
	fmt.Fprintln(os.Stderr, "         -target N   Total after discount")
	fmt.Fprintln(os.Stderr, "         -json       Print JSON")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  discount-form calc -item 10000x2 -item 5000 -target 20000")
}
