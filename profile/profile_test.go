package profile

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/sheetlens/sheetlens/dataset"
)

func table() *dataset.Table {
	return &dataset.Table{
		Labels: []string{"Card Number", "From", "Gate", "Score"},
		Rows: [][]any{
			{"6001001", "2020-01-01", "Y", "2"},
			{"6001002", "2020-02-03", "N", "4"},
			{"6001003", "2020-03-05", "Y", "4"},
			{"6001004", "", "N", "4"},
			{"6001001", "2020-05-09", "Y", "5"},
			{"6001005", "2020-06-11", "N", "5"},
			{"6001006", "2020-07-13", "Y", "7"},
			{"6001007", "2020-08-15", "N", "9"},
		},
	}
}

func TestOfWithEmptyTable(t *testing.T) {
	if report := Of(dataset.New([][]any{}), "Warehouse", "Stock"); report != nil {
		t.Errorf("Expected no report for empty table, got %v", report)
	}

	if report := Of(nil, "Warehouse", "Stock"); report != nil {
		t.Errorf("Expected no report for nil table, got %v", report)
	}
}

func TestOf(t *testing.T) {
	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	if report.Document != "Warehouse" || report.Worksheet != "Stock" {
		t.Errorf("Incorrect report titles - expected:%v/%v, got:%v/%v", "Warehouse", "Stock", report.Document, report.Worksheet)
	}

	if report.Rows != 8 || report.Columns != 4 {
		t.Errorf("Incorrect report shape - expected:%vx%v, got:%vx%v", 8, 4, report.Rows, report.Columns)
	}

	// 32 cells, 1 blank
	expected := 100.0 * 31.0 / 32.0
	if report.Completeness != expected {
		t.Errorf("Incorrect completeness - expected:%v, got:%v", expected, report.Completeness)
	}
}

func TestOfNumericColumn(t *testing.T) {
	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	field := report.Fields[3]

	if field.Kind != Numeric {
		t.Fatalf("Incorrect column type - expected:%v, got:%v", Numeric, field.Kind)
	}

	if field.Count != 8 || field.Missing != 0 || field.Distinct != 5 {
		t.Errorf("Incorrect counts - expected:%v/%v/%v, got:%v/%v/%v", 8, 0, 5, field.Count, field.Missing, field.Distinct)
	}

	if field.Min != 2.0 || field.Max != 9.0 {
		t.Errorf("Incorrect min/max - expected:%v/%v, got:%v/%v", 2.0, 9.0, field.Min, field.Max)
	}

	if field.Mean != 5.0 {
		t.Errorf("Incorrect mean - expected:%v, got:%v", 5.0, field.Mean)
	}

	if field.Median != 4.5 {
		t.Errorf("Incorrect median - expected:%v, got:%v", 4.5, field.Median)
	}

	if field.StdDev != 2.0 {
		t.Errorf("Incorrect standard deviation - expected:%v, got:%v", 2.0, field.StdDev)
	}
}

func TestOfDateColumn(t *testing.T) {
	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	field := report.Fields[1]

	if field.Kind != Date {
		t.Errorf("Incorrect column type - expected:%v, got:%v", Date, field.Kind)
	}

	if field.Count != 7 || field.Missing != 1 {
		t.Errorf("Incorrect counts - expected:%v/%v, got:%v/%v", 7, 1, field.Count, field.Missing)
	}
}

func TestOfBooleanColumn(t *testing.T) {
	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	if field := report.Fields[2]; field.Kind != Boolean {
		t.Errorf("Incorrect column type - expected:%v, got:%v", Boolean, field.Kind)
	}
}

func TestOfBlankColumn(t *testing.T) {
	blank := &dataset.Table{
		Labels: []string{"Notes"},
		Rows: [][]any{
			{""},
			{" "},
		},
	}

	report := Of(blank, "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	field := report.Fields[0]

	if field.Kind != Blank {
		t.Errorf("Incorrect column type - expected:%v, got:%v", Blank, field.Kind)
	}

	if field.Count != 0 || field.Missing != 2 || field.Distinct != 0 {
		t.Errorf("Incorrect counts - expected:%v/%v/%v, got:%v/%v/%v", 0, 2, 0, field.Count, field.Missing, field.Distinct)
	}
}

func TestOfTopValues(t *testing.T) {
	expected := []ValueCount{
		{Value: "4", Count: 3},
		{Value: "5", Count: 2},
		{Value: "2", Count: 1},
		{Value: "7", Count: 1},
		{Value: "9", Count: 1},
	}

	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	if field := report.Fields[3]; !reflect.DeepEqual(field.Top, expected) {
		t.Errorf("Incorrect top values\n   expected: %v\n   got:      %v\n", expected, field.Top)
	}
}

func TestRender(t *testing.T) {
	report := Of(table(), "Warehouse", "Stock")
	if report == nil {
		t.Fatalf("Expected report, got %v", report)
	}

	report.Excluded = []string{"Doors"}

	var b bytes.Buffer
	if err := Render(&b, report); err != nil {
		t.Fatalf("Unexpected error rendering report (%v)", err)
	}

	html := b.String()

	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Errorf("Expected self-contained HTML document")
	}

	if !strings.Contains(html, "Report: Warehouse - Stock") {
		t.Errorf("Expected report title in rendered HTML")
	}

	if !strings.Contains(html, "Doors") {
		t.Errorf("Expected excluded columns in rendered HTML")
	}
}

func TestRenderWithoutReport(t *testing.T) {
	var b bytes.Buffer

	if err := Render(&b, nil); err == nil {
		t.Errorf("Expected error rendering nil report, got %v", err)
	}
}
