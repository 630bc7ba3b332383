package commands

import (
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"  https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms  ", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, test := range tests {
		id, err := spreadsheetID(test.url)
		if err != nil {
			t.Fatalf("Unexpected error returned from spreadsheetID (%v)", err)
		}

		if id != test.expected {
			t.Errorf("Incorrect spreadsheet ID - expected:%v, got:%v", test.expected, id)
		}
	}
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	tests := []string{
		"",
		"https://docs.google.com/documents/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for _, url := range tests {
		if _, err := spreadsheetID(url); err == nil {
			t.Errorf("Expected error return for URL '%s', got %v", url, err)
		}
	}
}

func TestWorksheetsOf(t *testing.T) {
	expected := []Worksheet{
		{Title: "Class Data", ID: 0, Rows: 31, Cols: 6},
		{Title: "Attendance Chart", ID: 1867774262, Rows: 0, Cols: 0},
	}

	// chart and object sheets have no grid properties
	document := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title:   "Class Data",
					SheetId: 0,
					GridProperties: &sheets.GridProperties{
						RowCount:    31,
						ColumnCount: 6,
					},
				},
			},
			{
				Properties: &sheets.SheetProperties{
					Title:   "Attendance Chart",
					SheetId: 1867774262,
				},
			},
		},
	}

	worksheets := worksheetsOf(&document)

	if !reflect.DeepEqual(worksheets, expected) {
		t.Errorf("Incorrect worksheet list\n   expected: %v\n   got:      %v\n", expected, worksheets)
	}
}

func TestWorksheetRange(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Class Data", "'Class Data'"},
		{"Sheet1", "'Sheet1'"},
		{"O'Brien's", "'O''Brien''s'"},
	}

	for _, test := range tests {
		if area := worksheetRange(test.title); area != test.expected {
			t.Errorf("Incorrect worksheet range - expected:%v, got:%v", test.expected, area)
		}
	}
}
