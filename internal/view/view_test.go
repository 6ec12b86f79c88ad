package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndex(t *testing.T) {
	views, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = views.RenderIndex(w, http.StatusOK, IndexPage{
		Messages:     []string{"Please provide a year", "<b>not markup</b>"},
		CurrentMonth: 11,
		CurrentYear:  2024,
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, body, `<div class="flash">Please provide a year</div>`)
	assert.Contains(t, body, "&lt;b&gt;not markup&lt;/b&gt;")
	assert.Contains(t, body, `<option value="11" selected>November</option>`)
	assert.Contains(t, body, `<option value="1">January</option>`)
	assert.Contains(t, body, `value="2024"`)
	assert.Contains(t, body, "<title>Stock Price Charts</title>")
}

func TestRenderChart(t *testing.T) {
	views, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = views.RenderChart(w, http.StatusOK, ChartPage{
		Title:     "AAPL Stock Price in March 2023",
		GraphJSON: `{"data":[],"layout":{}}`,
		Messages:  []string{"Data refreshed"},
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "<title>AAPL Stock Price in March 2023</title>")
	assert.Contains(t, body, `var graph = {"data":[],"layout":{}};`)
	assert.Equal(t, 1, strings.Count(body, "Plotly.newPlot"))
	assert.Contains(t, body, `<div class="flash">Data refreshed</div>`)
}

func TestMonths(t *testing.T) {
	months := IndexPage{CurrentMonth: 2}.Months()

	require.Len(t, months, 12)
	assert.Equal(t, MonthOption{Value: 1, Name: "January"}, months[0])
	assert.True(t, months[1].Selected)
	assert.Equal(t, "December", months[11].Name)
}
