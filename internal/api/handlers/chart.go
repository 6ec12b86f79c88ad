package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/api/request"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/api/response"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/flash"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/view"
)

// ChartHandler handles the chart form, the chart page and the JSON chart endpoint.
// It parses requests, delegates the pipeline to the chartService and turns
// pipeline errors into flash messages.
type ChartHandler struct {
	chartService *service.ChartService
	flashes      *flash.Store
	views        *view.Renderer
	now          func() time.Time
}

// NewChartHandler creates a new ChartHandler. now defaults to time.Now when nil.
func NewChartHandler(chartService *service.ChartService, flashes *flash.Store, views *view.Renderer, now func() time.Time) *ChartHandler {
	if now == nil {
		now = time.Now
	}
	return &ChartHandler{
		chartService: chartService,
		flashes:      flashes,
		views:        views,
		now:          now,
	}
}

// Index renders the chart form with the current month and year preselected
// and any messages queued by a previous request.
//
// Endpoint: GET /
func (h *ChartHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	page := view.IndexPage{
		Messages:     h.flashes.Pop(w, r),
		CurrentMonth: int(now.Month()),
		CurrentYear:  now.Year(),
	}
	if err := h.views.RenderIndex(w, http.StatusOK, page); err != nil {
		log.Printf("Failed to render index: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// GetTicker handles the chart form submission.
// On success the chart page is rendered along with any messages still queued;
// otherwise the user is sent back to the form with messages explaining why no
// chart could be drawn.
//
// Endpoint: POST /get_ticker
// Form: ticker, plot_type, month, year
func (h *ChartHandler) GetTicker(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithMessages(w, r, "Invalid form submission")
		return
	}

	req, err := request.ParseChartForm(
		r.PostForm.Get("ticker"),
		r.PostForm.Get("plot_type"),
		r.PostForm.Get("month"),
		r.PostForm.Get("year"),
	)
	if err != nil {
		messages, _ := userMessages(req.Ticker, err)
		h.redirectWithMessages(w, r, messages...)
		return
	}

	result, err := h.chartService.GetStockPriceChart(r.Context(), req)
	if err != nil {
		log.Printf("Chart for %s %d-%02d failed: %v", req.Ticker, req.Year, req.Month, err)
		messages, _ := userMessages(req.Ticker, err)
		h.redirectWithMessages(w, r, messages...)
		return
	}

	page := view.ChartPage{
		Title:     result.Chart.Title,
		GraphJSON: result.GraphJSON,
		Messages:  h.flashes.Pop(w, r),
	}
	if err := h.views.RenderChart(w, http.StatusOK, page); err != nil {
		log.Printf("Failed to render chart: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// RedirectToIndex sends direct visits of the form target back to the form.
//
// Endpoint: GET /get_ticker
func (h *ChartHandler) RedirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// ChartResponse is the body of a successful JSON chart request.
type ChartResponse struct {
	*service.ChartResult
	Messages []string `json:"messages"`
}

// Chart handles GET requests for a serialized chart.
// Month and year are optional and default to the current month and year.
//
// Endpoint: GET /api/chart?ticker=AAPL&plot_type=adj_close&month=3&year=2023
// Response: 200 OK with ChartResponse
// Error: 400 for invalid parameters or a future month, 404 when no data exists,
// 502 when the provider payload is unreadable; details carry the user messages
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.ParseChartQuery(q.Get("ticker"), q.Get("plot_type"), q.Get("month"), q.Get("year"))
	if err != nil {
		messages, status := userMessages(req.Ticker, err)
		response.RespondError(w, status, err, messages)
		return
	}

	result, err := h.chartService.GetStockPriceChart(r.Context(), req)
	if err != nil {
		log.Printf("Chart for %s %d-%02d failed: %v", req.Ticker, req.Year, req.Month, err)
		messages, status := userMessages(req.Ticker, err)
		response.RespondError(w, status, err, messages)
		return
	}

	respondJSON(w, http.StatusOK, ChartResponse{ChartResult: result, Messages: []string{}})
}

func (h *ChartHandler) redirectWithMessages(w http.ResponseWriter, r *http.Request, messages ...string) {
	if err := h.flashes.Add(w, r, messages...); err != nil {
		log.Printf("Failed to queue flash messages: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
