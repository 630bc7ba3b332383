package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},

	url:       "",
	worksheet: "",
	file:      time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	url       string
	worksheet string
	file      string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Downloads a Google Sheets worksheet to a TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --worksheet <title> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --worksheet <title> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet to a TSV file, with the detected header row as the first record")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetlens --debug get --credentials "credentials.json" \`)
	fmt.Println(`                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                          --worksheet "Class Data" \`)
	fmt.Println(`                          --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet title e.g. 'Class Data'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name, relative to --workdir unless absolute. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	spreadsheet, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheet, cmd.worksheet)
	}

	ctx := context.Background()

	gsheets, _, err := services(cmd.credentials, ctx)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	table, err := getTable(gsheets, spreadsheet, cmd.worksheet, ctx)
	if err != nil {
		return err
	}

	if table.IsEmpty() && len(table.Labels) == 0 {
		return fmt.Errorf("no data in worksheet '%s'", cmd.worksheet)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "sheetlens")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := tableToTSV(tmp, table); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	file := cmd.resolve(cmd.file)

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return err
	}

	infof("Retrieved worksheet '%s' to file %s", cmd.worksheet, file)

	return nil
}
