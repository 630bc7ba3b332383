package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetlens/sheetlens/commands/html"
	"github.com/sheetlens/sheetlens/profile"
)

var ServeCmd = Serve{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},

	listen: "localhost:8080",
}

type Serve struct {
	command
	listen string
}

// session memoizes listing, worksheet and report results keyed by their inputs.
// The cache is an optimization to avoid redundant API calls within a session, not
// a correctness mechanism - it lives for the process lifetime only.
type session struct {
	gsheets *sheets.Service
	gdrive  *drive.Service

	sync.Mutex
	spreadsheets []Spreadsheet
	worksheets   map[string][]Worksheet
	reports      map[string][]byte
}

func (cmd *Serve) Name() string {
	return "serve"
}

func (cmd *Serve) Description() string {
	return "Runs the interactive report UI on localhost"
}

func (cmd *Serve) Usage() string {
	return "--credentials <file> --listen <address>"
}

func (cmd *Serve) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] serve [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs a local web UI with a document selector, a worksheet selector and inline")
	fmt.Println("  HTML data quality reports")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetlens serve --credentials "credentials.json" --listen "localhost:8080"`)
	fmt.Println()
}

func (cmd *Serve) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("serve")

	flagset.StringVar(&cmd.listen, "listen", cmd.listen, "Address to listen on")

	return flagset
}

func (cmd *Serve) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	ctx := context.Background()

	gsheets, gdrive, err := services(cmd.credentials, ctx)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	s := &session{
		gsheets:    gsheets,
		gdrive:     gdrive,
		worksheets: map[string][]Worksheet{},
		reports:    map[string][]byte{},
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", cmd.index(s))
	mux.HandleFunc("/worksheets", cmd.sheets(s))
	mux.HandleFunc("/report", cmd.report(s))

	srv := &http.Server{
		Addr:    cmd.listen,
		Handler: mux,
	}

	go func() {
		infof("Listening on http://%s", cmd.listen)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			warnf("%v", err)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)

	<-interrupt

	infof("Shutting down")

	if err := srv.Shutdown(context.Background()); err != nil {
		warnf("%v", err)
	}

	return nil
}

func (cmd *Serve) index(s *session) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		if rq.URL.Path != "/" {
			http.NotFound(w, rq)
			return
		}

		page := struct {
			Spreadsheets []Spreadsheet
			Warning      string
		}{}

		spreadsheets, err := s.listSpreadsheets(rq.Context())
		switch {
		case err != nil:
			warnf("%v", err)
			page.Warning = fmt.Sprintf("Error listing spreadsheets (%v)", err)

		case len(spreadsheets) == 0:
			page.Warning = "No spreadsheets found - share a document with the service account to make it visible"

		default:
			page.Spreadsheets = spreadsheets
		}

		t, err := template.New("index.html").ParseFS(html.HTML, "index.html")
		if err != nil {
			http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
			return
		}

		var b bytes.Buffer
		if err := t.Execute(&b, page); err != nil {
			http.Error(w, "Error formatting page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(b.Bytes())
	}
}

func (cmd *Serve) sheets(s *session) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		spreadsheet := rq.FormValue("spreadsheet")
		if spreadsheet == "" {
			http.Error(w, "missing 'spreadsheet' parameter", http.StatusBadRequest)
			return
		}

		worksheets, err := s.listWorksheets(rq.Context(), spreadsheet)
		if err != nil {
			warnf("%v", err)
			http.Error(w, fmt.Sprintf("Error listing worksheets (%v)", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(worksheets)
	}
}

func (cmd *Serve) report(s *session) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		spreadsheet := rq.FormValue("spreadsheet")
		worksheet := rq.FormValue("worksheet")

		if spreadsheet == "" || worksheet == "" {
			http.Error(w, "missing 'spreadsheet'/'worksheet' parameter", http.StatusBadRequest)
			return
		}

		report, err := s.report(rq.Context(), spreadsheet, worksheet)
		if err != nil {
			warnf("%v", err)
			http.Error(w, fmt.Sprintf("Error generating report (%v)", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if report == nil {
			fmt.Fprintf(w, "<!DOCTYPE html><html><body><p>No data in worksheet '%s' - nothing to report</p></body></html>", template.HTMLEscapeString(worksheet))
			return
		}

		w.Write(report)
	}
}

func (s *session) listSpreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	s.Lock()
	defer s.Unlock()

	if s.spreadsheets != nil {
		return s.spreadsheets, nil
	}

	spreadsheets, err := listSpreadsheets(s.gdrive, ctx)
	if err != nil {
		return nil, err
	}

	s.spreadsheets = spreadsheets

	return spreadsheets, nil
}

func (s *session) listWorksheets(ctx context.Context, spreadsheet string) ([]Worksheet, error) {
	s.Lock()
	defer s.Unlock()

	if worksheets, ok := s.worksheets[spreadsheet]; ok {
		return worksheets, nil
	}

	worksheets, err := listWorksheets(s.gsheets, spreadsheet, ctx)
	if err != nil {
		return nil, err
	}

	s.worksheets[spreadsheet] = worksheets

	return worksheets, nil
}

// report loads, filters and profiles a worksheet, memoizing the rendered HTML. A
// nil result with a nil error is the 'nothing to report' case.
func (s *session) report(ctx context.Context, spreadsheet, worksheet string) ([]byte, error) {
	key := fmt.Sprintf("%s\n%s", spreadsheet, worksheet)

	s.Lock()
	defer s.Unlock()

	if report, ok := s.reports[key]; ok {
		return report, nil
	}

	document, err := s.gsheets.Spreadsheets.Get(spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	table, err := getTable(s.gsheets, spreadsheet, worksheet, ctx)
	if err != nil {
		return nil, err
	}

	filtered, excluded := table.FilterScalars()

	report := profile.Of(filtered, document.Properties.Title, worksheet)
	if report == nil {
		return nil, nil
	}

	report.Excluded = excluded

	var b bytes.Buffer
	if err := profile.Render(&b, report); err != nil {
		return nil, err
	}

	s.reports[key] = b.Bytes()

	return b.Bytes(), nil
}
