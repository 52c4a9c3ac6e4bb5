// Package server exposes the insight engine and advisor over a JSON HTTP API.
// Every request carries its own snapshot; nothing is kept between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/advisor"
	"github.com/financely/financely/internal/insight"
	"github.com/financely/financely/internal/model"
	"github.com/financely/financely/internal/snapshot"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// Server answers insight and advice requests.
type Server struct {
	advisor  *advisor.Advisor
	currency insight.Currency
	logger   *slog.Logger
}

// New creates a Server. A nil logger discards diagnostics.
func New(a *advisor.Advisor, currency insight.Currency, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if currency == "" {
		currency = insight.DefaultCurrency
	}
	return &Server{advisor: a, currency: currency, logger: logger}
}

// InsightsResponse is the body of POST /api/insights.
type InsightsResponse struct {
	Context       insight.Context           `json:"context"`
	Insight       insight.PredictiveInsight `json:"insight"`
	QuickInsights []string                  `json:"quickInsights"`
}

// AdviceRequest is the body accepted by POST /api/advice.
type AdviceRequest struct {
	Snapshot snapshot.Document `json:"snapshot"`
	Message  string            `json:"message"`
}

// SIPRequest is the body accepted by POST /api/sip.
type SIPRequest struct {
	Monthly    decimal.Decimal `json:"monthly"`
	AnnualRate decimal.Decimal `json:"annualRate"`
	Years      int             `json:"years"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(slogFormatter{logger: s.logger}))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/insights", s.handleInsights)
		r.Post("/advice", s.handleAdvice)
		r.Post("/sip", s.handleSIP)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var doc snapshot.Document
	if err := decodeBody(r, &doc); err != nil {
		s.badRequest(w, err)
		return
	}
	snap, err := checked(doc)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	c := insight.BuildContext(snap)
	p := insight.Predict(c)
	writeJSON(w, http.StatusOK, InsightsResponse{
		Context:       c,
		Insight:       p,
		QuickInsights: insight.QuickInsights(c, p, s.currency),
	})
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	snap, err := checked(req.Snapshot)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	advice := s.advisor.Advise(r.Context(), snap, req.Message)
	writeJSON(w, http.StatusOK, advice)
}

func (s *Server) handleSIP(w http.ResponseWriter, r *http.Request) {
	var req SIPRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	p, err := insight.ProjectSIP(req.Monthly, req.AnnualRate, req.Years)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.logger.Debug("rejecting request", "error", err)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func checked(doc snapshot.Document) (model.Snapshot, error) {
	snap := doc.Snapshot()
	if err := snapshot.Check(snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if len(body) == 0 {
		return errors.New("request body is empty")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
