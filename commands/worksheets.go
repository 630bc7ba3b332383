package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

var WorksheetsCmd = Worksheets{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},

	url: "",
}

type Worksheets struct {
	command
	url string
}

func (cmd *Worksheets) Name() string {
	return "worksheets"
}

func (cmd *Worksheets) Description() string {
	return "Lists the worksheets of a Google Sheets spreadsheet"
}

func (cmd *Worksheets) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Worksheets) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] worksheets [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the title and dimensions of every worksheet in a spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetlens worksheets --credentials "credentials.json" \`)
	fmt.Println(`                         --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Worksheets) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("worksheets")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")

	return flagset
}

func (cmd *Worksheets) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	spreadsheet, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", spreadsheet)
	}

	ctx := context.Background()

	gsheets, _, err := services(cmd.credentials, ctx)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	worksheets, err := listWorksheets(gsheets, spreadsheet, ctx)
	if err != nil {
		return err
	}

	if len(worksheets) == 0 {
		infof("No visible worksheets in spreadsheet %s", spreadsheet)
		return nil
	}

	for _, ws := range worksheets {
		fmt.Printf("  %-32s %vx%v\n", ws.Title, ws.Rows, ws.Cols)
	}

	return nil
}
