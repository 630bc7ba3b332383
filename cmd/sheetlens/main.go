package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sheetlens/sheetlens/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.ListCmd,
	&commands.WorksheetsCmd,
	&commands.GetCmd,
	&commands.ReportCmd,
	&commands.ServeCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cmd, err := commands.Parse(cli, flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		commands.Usage(cli)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
