// Package profile computes descriptive statistics for the columns of a dataset and
// renders them as a self-contained HTML data quality report.
package profile

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cast"

	"github.com/sheetlens/sheetlens/dataset"
)

// Kind is the inferred type of a column.
type Kind string

const (
	Numeric Kind = "numeric"
	Text    Kind = "text"
	Boolean Kind = "boolean"
	Date    Kind = "date"
	Blank   Kind = "blank"
)

// ValueCount is a cell value with its number of occurrences in a column.
type ValueCount struct {
	Value string
	Count int
}

// Field holds the descriptive statistics for a single column.
type Field struct {
	Label    string
	Kind     Kind
	Count    int
	Missing  int
	Distinct int
	Top      []ValueCount

	// numeric columns
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64

	// text columns
	MinLength  int
	MaxLength  int
	MeanLength float64
}

// Report is the profiling result for a worksheet.
type Report struct {
	Document     string
	Worksheet    string
	GeneratedAt  time.Time
	Rows         int
	Columns      int
	Excluded     []string
	Completeness float64
	Fields       []Field
}

// maxTopValues caps the most-frequent-values list per column.
const maxTopValues = 10

// Of profiles a table. Returns nil for an empty table - no report is a distinct
// outcome from a report generation failure.
func Of(t *dataset.Table, document, worksheet string) *Report {
	if t == nil || t.IsEmpty() {
		return nil
	}

	report := Report{
		Document:    document,
		Worksheet:   worksheet,
		GeneratedAt: time.Now(),
		Rows:        len(t.Rows),
		Columns:     len(t.Labels),
		Excluded:    []string{},
		Fields:      make([]Field, len(t.Labels)),
	}

	cells := 0
	missing := 0

	for ix, label := range t.Labels {
		field := profileColumn(label, t.Column(ix))
		report.Fields[ix] = field

		cells += field.Count + field.Missing
		missing += field.Missing
	}

	if cells > 0 {
		report.Completeness = 100.0 * float64(cells-missing) / float64(cells)
	}

	return &report
}

func profileColumn(label string, cells []any) Field {
	field := Field{
		Label: label,
		Top:   []ValueCount{},
	}

	values := []string{}
	counts := map[string]int{}

	for _, cell := range cells {
		v := cast.ToString(cell)
		if strings.TrimSpace(v) == "" {
			field.Missing++
			continue
		}

		values = append(values, v)
		counts[v]++
	}

	field.Count = len(values)
	field.Distinct = len(counts)
	field.Kind = classify(values)
	field.Top = top(counts, maxTopValues)

	switch field.Kind {
	case Numeric:
		data := make(stats.Float64Data, len(values))
		for i, v := range values {
			data[i], _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
		}

		field.Min, _ = stats.Min(data)
		field.Max, _ = stats.Max(data)
		field.Mean, _ = stats.Mean(data)
		field.Median, _ = stats.Median(data)
		field.StdDev, _ = stats.StandardDeviation(data)

	case Text, Date, Boolean:
		lengths := make([]int, len(values))
		sum := 0
		for i, v := range values {
			lengths[i] = len(v)
			sum += len(v)
		}

		field.MinLength = lengths[0]
		field.MaxLength = lengths[0]
		for _, l := range lengths {
			if l < field.MinLength {
				field.MinLength = l
			}

			if l > field.MaxLength {
				field.MaxLength = l
			}
		}

		field.MeanLength = float64(sum) / float64(len(lengths))
	}

	return field
}

// classify infers a column type from its non-blank cells. Booleans are checked
// before numerics so that e.g. a column of 0/1 flags still reads as numeric but
// yes/no columns do not read as text.
func classify(values []string) Kind {
	if len(values) == 0 {
		return Blank
	}

	numeric := true
	boolean := true
	date := true

	for _, v := range values {
		v = strings.TrimSpace(v)

		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
		}

		switch strings.ToLower(v) {
		case "true", "false", "yes", "no", "y", "n":
		default:
			boolean = false
		}

		if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
			date = false
		}
	}

	switch {
	case boolean:
		return Boolean

	case numeric:
		return Numeric

	case date:
		return Date

	default:
		return Text
	}
}

func top(counts map[string]int, limit int) []ValueCount {
	list := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		list = append(list, ValueCount{Value: v, Count: n})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}

		return list[i].Value < list[j].Value
	})

	if len(list) > limit {
		list = list[:limit]
	}

	return list
}
