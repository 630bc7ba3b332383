package commands

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetlens/sheetlens/dataset"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE  = "https://www.googleapis.com/auth/drive.readonly"
)

// Spreadsheet is a document visible to the service account.
type Spreadsheet struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	URL   string `json:"url"`
}

// Worksheet is a single sheet within a spreadsheet.
type Worksheet struct {
	Title string `json:"title"`
	ID    int64  `json:"id"`
	Rows  int64  `json:"row_count"`
	Cols  int64  `json:"col_count"`
}

// services authenticates with the service account key file and returns read-only
// Sheets and Drive clients.
func services(credentials string, ctx context.Context) (*sheets.Service, *drive.Service, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read service account key (%v)", err)
	}

	config, err := google.JWTConfigFromJSON(b, SHEETS, DRIVE)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse service account key (%v)", err)
	}

	client := config.Client(ctx)

	gsheets, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return gsheets, gdrive, nil
}

// listSpreadsheets enumerates every spreadsheet shared with the service account,
// following page tokens until the listing is exhausted.
func listSpreadsheets(gdrive *drive.Service, ctx context.Context) ([]Spreadsheet, error) {
	list := []Spreadsheet{}
	page := ""

	for {
		call := gdrive.Files.List().
			Q("mimeType='application/vnd.google-apps.spreadsheet'").
			Fields("nextPageToken, files(id, name)").
			OrderBy("name").
			PageSize(100).
			Context(ctx)

		if page != "" {
			call = call.PageToken(page)
		}

		files, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to list spreadsheets (%v)", err)
		}

		for _, f := range files.Files {
			list = append(list, Spreadsheet{
				Title: f.Name,
				ID:    f.Id,
				URL:   fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", f.Id),
			})
		}

		if page = files.NextPageToken; page == "" {
			break
		}
	}

	return list, nil
}

// listWorksheets enumerates the worksheets of a spreadsheet.
func listWorksheets(gsheets *sheets.Service, spreadsheet string, ctx context.Context) ([]Worksheet, error) {
	document, err := gsheets.Spreadsheets.Get(spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	return worksheetsOf(document), nil
}

// worksheetsOf maps the sheets of a spreadsheet document to the worksheet list.
// Non-grid sheets (charts etc) have no grid properties and are listed with zero
// dimensions.
func worksheetsOf(document *sheets.Spreadsheet) []Worksheet {
	list := []Worksheet{}
	for _, sheet := range document.Sheets {
		ws := Worksheet{
			Title: sheet.Properties.Title,
			ID:    sheet.Properties.SheetId,
		}

		if grid := sheet.Properties.GridProperties; grid != nil {
			ws.Rows = grid.RowCount
			ws.Cols = grid.ColumnCount
		}

		list = append(list, ws)
	}

	return list
}

// getTable fetches all cell values of a worksheet, detects and promotes the header
// row. A worksheet without rows yields an empty table.
func getTable(gsheets *sheets.Service, spreadsheet, worksheet string, ctx context.Context) (*dataset.Table, error) {
	response, err := gsheets.Spreadsheets.Values.Get(spreadsheet, worksheetRange(worksheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	table := dataset.New(response.Values)

	if header, ok := table.HeaderRow(dataset.MaxHeaderScan); ok {
		table.Promote(header)
	}

	return table, nil
}

// worksheetRange quotes a worksheet title for use as an A1 range covering the
// whole sheet.
func worksheetRange(title string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(title, "'", "''"))
}

// spreadsheetID extracts the document ID from a spreadsheet URL.
func spreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}
