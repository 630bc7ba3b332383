package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sheetlens/sheetlens/profile"
)

var ReportCmd = Report{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},

	url:       "",
	worksheet: "",
	file:      time.Now().Format("2006-01-02T150405.html"),
}

type Report struct {
	command
	url       string
	worksheet string
	file      string
}

func (cmd *Report) Name() string {
	return "report"
}

func (cmd *Report) Description() string {
	return "Generates an HTML data quality report for a Google Sheets worksheet"
}

func (cmd *Report) Usage() string {
	return "--credentials <file> --url <url> --worksheet <title> --file <file>"
}

func (cmd *Report) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] report [options] --url <URL> --worksheet <title> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Loads a worksheet, promotes the detected header row, drops columns with non-scalar")
	fmt.Println("  values and writes a self-contained HTML report with per-column descriptive statistics")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetlens --debug report --credentials "credentials.json" \`)
	fmt.Println(`                             --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                             --worksheet "Class Data" \`)
	fmt.Println(`                             --file "report.html"`)
	fmt.Println()
}

func (cmd *Report) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("report")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet title e.g. 'Class Data'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "HTML report file name, relative to --workdir unless absolute. Defaults to '<yyyy-mm-ddTHHmmss>.html'")

	return flagset
}

func (cmd *Report) Execute(args ...any) error {
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

	document, err := gsheets.Spreadsheets.Get(spreadsheet).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	table, err := getTable(gsheets, spreadsheet, cmd.worksheet, ctx)
	if err != nil {
		return err
	}

	if table.IsEmpty() {
		warnf("No rows in worksheet '%s' - nothing to report", cmd.worksheet)
		return nil
	}

	filtered, excluded := table.FilterScalars()
	if len(excluded) > 0 {
		warnf("Excluded incompatible columns: %s", strings.Join(excluded, ", "))
	}

	report := profile.Of(filtered, document.Properties.Title, cmd.worksheet)
	if report == nil {
		warnf("Nothing to profile in worksheet '%s'", cmd.worksheet)
		return nil
	}

	report.Excluded = excluded

	tmp, err := os.CreateTemp(os.TempDir(), "sheetlens")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := profile.Render(tmp, report); err != nil {
		return fmt.Errorf("error generating report (%v)", err)
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

	infof("Generated report for worksheet '%s' to file %s", cmd.worksheet, file)

	return nil
}
