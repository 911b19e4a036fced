// Package web exposes the engine's derived views over a small JSON
// API. It owns no computation and no storage format: every request
// loads a fresh trade snapshot, runs the pure engine, and renders the
// result.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/internal/logger"
	"github.com/diariotrade/diario/risk"
	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

// TradeSource yields the full trade log; the journal's SQLite store
// satisfies it.
type TradeSource interface {
	ListAll(ctx context.Context) ([]trade.Trade, error)
}

// Server wires the HTTP layer to a trade source and configuration.
type Server struct {
	source TradeSource
	text   config.Text

	// now returns the current ISO date; overridable in tests.
	now func() string
}

// NewServer builds a dashboard server over a trade source.
func NewServer(source TradeSource, text config.Text) *Server {
	return &Server{source: source, text: text, now: trade.Today}
}

// Handler exposes the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/trades", s.handleTrades)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx, end := logger.StartSpan(r.Context(), "web.summary")
	defer end()

	all, err := s.source.ListAll(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	cfg := s.text.Normalize()
	date := r.URL.Query().Get("date")
	tag := r.URL.Query().Get("tag")
	filtered := stats.Filter(all, date, tag)

	resp := summaryResponse{
		Summary:  stats.Summarize(all, filtered, cfg),
		Decision: risk.EvaluateDay(all, s.now(), cfg),
		Tags:     stats.Tags(all),
	}
	writeJSON(w, resp)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx, end := logger.StartSpan(r.Context(), "web.trades")
	defer end()

	all, err := s.source.ListAll(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	cfg := s.text.Normalize()
	date := r.URL.Query().Get("date")
	tag := r.URL.Query().Get("tag")

	filtered := stats.Filter(all, date, tag)
	rows := make([]tradeRow, 0, len(filtered))
	for _, t := range stats.Sorted(filtered) {
		rows = append(rows, tradeRow{
			ID:        t.ID,
			Date:      t.Date,
			Symbol:    t.Symbol,
			Contracts: stats.Contracts(t),
			Mode:      string(t.Mode.Kind),
			Value:     t.Mode.Value,
			Tag:       t.Tag,
			Fee:       stats.Fee(t, cfg),
			Net:       stats.Net(t, cfg),
		})
	}
	writeJSON(w, tradesResponse{Trades: rows, Total: len(all)})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx, end := logger.StartSpan(r.Context(), "web.status")
	defer end()

	all, err := s.source.ListAll(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, risk.EvaluateDay(all, s.now(), s.text.Normalize()))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

type summaryResponse struct {
	Summary  stats.Summary `json:"summary"`
	Decision risk.Decision `json:"today"`
	Tags     []string      `json:"tags"`
}

type tradeRow struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Symbol    string  `json:"symbol"`
	Contracts int     `json:"contracts"`
	Mode      string  `json:"mode"`
	Value     string  `json:"value"`
	Tag       string  `json:"tag,omitempty"`
	Fee       float64 `json:"fee"`
	Net       float64 `json:"net"`
}

type tradesResponse struct {
	Trades []tradeRow `json:"trades"`
	Total  int        `json:"total"`
}
