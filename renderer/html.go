package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"net/url"
	"strconv"

	"github.com/etnz/simulador"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html"))

// markdown converts GitHub flavored tables to HTML.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Tabs of the HTML page.
const (
	TabSummary = "resumo"
	TabChart   = "grafico"
	TabExport  = "excel"
)

// FormField is an input of the parameter form.
type FormField struct {
	Key, Label string
	Value      string
	Min, Max   string
	Step       string // "any" when the field has no step
	Error      string
}

// PageData is everything the HTML page shows.
type PageData struct {
	Params     simulador.Params
	Errors     map[string]string // validation messages by field key
	Failure    string            // generic failure message
	Tab        string
	Projection *simulador.Projection // nil when the parameters are invalid
}

// Page renders the interactive HTML page: the parameter form and one of the
// tabs over the projection.
type Page struct{}

func (Page) Render(w io.Writer, p *simulador.Projection) error {
	return RenderPage(w, PageData{Params: p.Params, Tab: TabSummary, Projection: p})
}

type tabLink struct {
	Label  string
	Href   template.URL
	Active bool
}

type pageView struct {
	PageData
	Fields     []FormField
	Tabs       []tabLink
	ExportHref template.URL
	Summary    template.HTML
	Yearly     template.HTML
	Chart      string
	Filename   string
}

var tabs = []struct{ name, label string }{
	{TabSummary, "Tabela Resumo"},
	{TabChart, "Gráfico de Evolução"},
	{TabExport, "Baixar Excel"},
}

// Query encodes p as form values, in input unit.
func Query(p simulador.Params) url.Values {
	q := url.Values{}
	for _, f := range simulador.Fields {
		q.Set(f.Key, formatInput(f.Input(&p)))
	}
	return q
}

// RenderPage renders data as a complete HTML document.
func RenderPage(w io.Writer, data PageData) error {
	if data.Tab == "" {
		data.Tab = TabSummary
	}
	v := pageView{PageData: data, Fields: formFields(data.Params, data.Errors), Filename: WorkbookFilename}
	q := Query(data.Params)
	v.ExportHref = template.URL("/export.xlsx?" + q.Encode())
	for _, t := range tabs {
		q.Set("tab", t.name)
		v.Tabs = append(v.Tabs, tabLink{Label: t.label, Href: template.URL("/?" + q.Encode()), Active: t.name == data.Tab})
	}
	if p := data.Projection; p != nil {
		var err error
		if v.Summary, err = markdownHTML(SummaryTable{}, p); err != nil {
			return err
		}
		if v.Yearly, err = markdownHTML(YearlyTable{}, p); err != nil {
			return err
		}
		v.Chart = Chart{Height: DefaultChartHeight, Width: DefaultChartWidth}.Plot(p)
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, v); err != nil {
		return fmt.Errorf("cannot render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func markdownHTML(v View, p *simulador.Projection) (template.HTML, error) {
	var src, out bytes.Buffer
	if err := v.Render(&src, p); err != nil {
		return "", err
	}
	if err := markdown.Convert(src.Bytes(), &out); err != nil {
		return "", fmt.Errorf("cannot convert markdown: %w", err)
	}
	return template.HTML(out.String()), nil
}

func formFields(p simulador.Params, errs map[string]string) []FormField {
	fields := make([]FormField, 0, len(simulador.Fields))
	for _, f := range simulador.Fields {
		ff := FormField{
			Key:   f.Key,
			Label: f.Label,
			Value: formatInput(f.Input(&p)),
			Step:  "any",
			Error: errs[f.Key],
		}
		lo, hi := f.Min, f.InputMax
		if f.Percent {
			lo, hi = lo*100, hi*100
		}
		ff.Min, ff.Max = formatInput(lo), formatInput(hi)
		if f.Step > 0 {
			ff.Step = formatInput(f.Step)
		}
		fields = append(fields, ff)
	}
	return fields
}

// formatInput prints v with the fewest digits, rounding the noise of percent
// conversions away.
func formatInput(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(math.Round(v*1e8)/1e8, 'f', -1, 64)
}
