// Package plotly encodes chart descriptions as Plotly figure JSON.
// The output is passed unchanged to Plotly.newPlot in the browser.
package plotly

import "encoding/json"

// Figure is the top-level Plotly figure object.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single scatter or candlestick trace. Numbers are kept as json.Number
// so decimal prices are written and read back without float rounding.
type Trace struct {
	Type  string        `json:"type"`
	Mode  string        `json:"mode,omitempty"`
	UID   string        `json:"uid,omitempty"`
	X     []string      `json:"x"`
	Y     []json.Number `json:"y,omitempty"`
	Open  []json.Number `json:"open,omitempty"`
	High  []json.Number `json:"high,omitempty"`
	Low   []json.Number `json:"low,omitempty"`
	Close []json.Number `json:"close,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title  `json:"title"`
	Type  string `json:"type,omitempty"`
}

// Layout holds the figure layout. Meta is free-form in Plotly; it carries the theme name
// so Deserialize can recover it from the expanded template.
type Layout struct {
	Title    Title     `json:"title"`
	XAxis    Axis      `json:"xaxis"`
	YAxis    Axis      `json:"yaxis"`
	Template *Template `json:"template,omitempty"`
	Meta     Meta      `json:"meta"`
}

type Meta struct {
	Theme string `json:"theme,omitempty"`
}

// Template is a Plotly layout template.
type Template struct {
	Layout map[string]any `json:"layout"`
}

const (
	traceTypeScatter     = "scatter"
	traceTypeCandlestick = "candlestick"
	modeLinesMarkers     = "lines+markers"
	axisTypeDate         = "date"
	dateLayout           = "2006-01-02"
)

// themes holds the templates known by name. Plotly.js does not ship the named
// templates of the Python library, so they are expanded here.
var themes = map[string]Template{
	"plotly_white": {
		Layout: map[string]any{
			"paper_bgcolor": "white",
			"plot_bgcolor":  "white",
			"font":          map[string]any{"color": "#2a3f5f"},
			"colorway": []string{
				"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
				"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
			},
			"xaxis": map[string]any{
				"gridcolor":     "#EBF0F8",
				"linecolor":     "#EBF0F8",
				"zerolinecolor": "#EBF0F8",
				"automargin":    true,
				"ticks":         "",
			},
			"yaxis": map[string]any{
				"gridcolor":     "#EBF0F8",
				"linecolor":     "#EBF0F8",
				"zerolinecolor": "#EBF0F8",
				"automargin":    true,
				"ticks":         "",
			},
			"hovermode": "closest",
		},
	},
}
