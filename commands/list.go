package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

var ListCmd = List{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},
}

type List struct {
	command
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the spreadsheets accessible to the service account"
}

func (cmd *List) Usage() string {
	return "--credentials <file>"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] list [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the title, ID and URL of every spreadsheet shared with the service account")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetlens list --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	return cmd.flagset("list")
}

func (cmd *List) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	ctx := context.Background()

	_, gdrive, err := services(cmd.credentials, ctx)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	spreadsheets, err := listSpreadsheets(gdrive, ctx)
	if err != nil {
		return err
	}

	if len(spreadsheets) == 0 {
		infof("No spreadsheets found - share a document with the service account to make it visible")
		return nil
	}

	width := 0
	for _, s := range spreadsheets {
		if len(s.Title) > width {
			width = len(s.Title)
		}
	}

	for _, s := range spreadsheets {
		fmt.Printf("  %-*s  %s\n", width, s.Title, s.URL)
	}

	return nil
}
