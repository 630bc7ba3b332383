package profile

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

//go:embed report.html
var assets embed.FS

var functions = template.FuncMap{
	"comma": func(v int) string {
		return humanize.Comma(int64(v))
	},

	"float": func(v float64) string {
		return humanize.CommafWithDigits(v, 2)
	},

	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},

	"join": func(v []string) string {
		return strings.Join(v, ", ")
	},
}

// Render writes the report as a single self-contained HTML document.
func Render(w io.Writer, report *Report) error {
	if report == nil {
		return fmt.Errorf("no report to render")
	}

	t, err := template.New("report.html").Funcs(functions).ParseFS(assets, "report.html")
	if err != nil {
		return fmt.Errorf("error parsing report template (%v)", err)
	}

	var b bytes.Buffer
	if err := t.Execute(&b, report); err != nil {
		return fmt.Errorf("error formatting report (%v)", err)
	}

	if _, err := w.Write(b.Bytes()); err != nil {
		return err
	}

	return nil
}
