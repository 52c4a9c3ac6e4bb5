package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// slogFormatter routes chi's request log through the configured logger.
type slogFormatter struct {
	logger *slog.Logger
}

func (f slogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &slogEntry{logger: f.logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
	)}
}

type slogEntry struct {
	logger *slog.Logger
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	e.logger.Info("request", "status", status, "bytes", bytes, "elapsed", elapsed)
}

func (e *slogEntry) Panic(v any, stack []byte) {
	e.logger.Error("request panicked", "panic", fmt.Sprint(v), "stack", string(stack))
}
