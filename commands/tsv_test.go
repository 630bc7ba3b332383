package commands

import (
	"bytes"
	"testing"

	"github.com/sheetlens/sheetlens/dataset"
)

func TestTableToTSV(t *testing.T) {
	expected := "Card Number\tFrom\tTo\n" +
		"6001001\t2020-01-01\t2020-12-31\n" +
		"6001002\t2020-02-03\t2020-11-30\n"

	table := dataset.Table{
		Labels: []string{"Card Number", "From", "To"},
		Rows: [][]any{
			{"6001001", "2020-01-01", "2020-12-31"},
			{"6001002", "2020-02-03", "2020-11-30"},
		},
	}

	var b bytes.Buffer

	if err := tableToTSV(&b, &table); err != nil {
		t.Fatalf("Unexpected error returned from tableToTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %v\n   got:      %v\n", expected, b.String())
	}
}

func TestTableToTSVWithNonStringCells(t *testing.T) {
	expected := "Card Number\tEnabled\n" +
		"6001001\ttrue\n"

	table := dataset.Table{
		Labels: []string{"Card Number", "Enabled"},
		Rows: [][]any{
			{6001001, true},
		},
	}

	var b bytes.Buffer

	if err := tableToTSV(&b, &table); err != nil {
		t.Fatalf("Unexpected error returned from tableToTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %v\n   got:      %v\n", expected, b.String())
	}
}

func TestTableToTSVWithEmptyTable(t *testing.T) {
	table := dataset.New([][]any{})

	var b bytes.Buffer

	if err := tableToTSV(&b, table); err == nil {
		t.Errorf("Expected error return for empty table, got %v", err)
	}
}
