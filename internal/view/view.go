// Package view renders the HTML pages of the chart form and chart display.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexPage is the data rendered by the index form.
type IndexPage struct {
	Messages     []string
	CurrentMonth int
	CurrentYear  int
}

// MonthOption is one entry of the month drop-down.
type MonthOption struct {
	Value    int
	Name     string
	Selected bool
}

// Months returns the twelve month options with the current month selected.
func (p IndexPage) Months() []MonthOption {
	options := make([]MonthOption, 12)
	for i := range options {
		m := time.Month(i + 1)
		options[i] = MonthOption{Value: int(m), Name: m.String(), Selected: int(m) == p.CurrentMonth}
	}
	return options
}

// ChartPage is the data rendered by the chart page. GraphJSON must be a figure
// produced by plotly.Serialize; it is embedded into a script block unescaped.
type ChartPage struct {
	Title     string
	GraphJSON string
	Messages  []string
}

// Graph returns GraphJSON marked safe for a JavaScript context.
func (p ChartPage) Graph() template.JS {
	return template.JS(p.GraphJSON)
}

// Renderer executes the embedded page templates.
type Renderer struct {
	index *template.Template
	chart *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, err
	}
	chart, err := template.ParseFS(templateFS, "templates/layout.html", "templates/chart.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{index: index, chart: chart}, nil
}

// RenderIndex writes the index form page.
func (v *Renderer) RenderIndex(w http.ResponseWriter, status int, page IndexPage) error {
	return render(w, status, v.index, page)
}

// RenderChart writes the chart page.
func (v *Renderer) RenderChart(w http.ResponseWriter, status int, page ChartPage) error {
	return render(w, status, v.chart, page)
}

// render buffers the output so a template error never leaves a half-written page.
func render(w http.ResponseWriter, status int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
