package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/advisor"
	"github.com/financely/financely/internal/config"
	"github.com/financely/financely/internal/insight"
	"github.com/financely/financely/internal/model"
	"github.com/financely/financely/internal/snapshot"
)

// workspace is a resolved --dir with its configuration.
type workspace struct {
	dir    string
	cfg    *config.Config
	logger *slog.Logger
}

func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadWorkspace(absDir)
	if err != nil {
		return nil, err
	}

	return &workspace{
		dir:    absDir,
		cfg:    cfg,
		logger: newLogger(cmd.ErrOrStderr(), cfg.LogLevel()),
	}, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (ws *workspace) currency() insight.Currency {
	return insight.Currency(ws.cfg.Currency.Symbol)
}

// loadSnapshot reads the file at path, or the whole workspace when path is empty.
func (ws *workspace) loadSnapshot(path string) (model.Snapshot, error) {
	if path != "" {
		return snapshot.Load(path)
	}
	return snapshot.LoadWorkspace(ws.dir)
}

// newAdvisor wires the live generator when an API key is available.
func (ws *workspace) newAdvisor() (*advisor.Advisor, error) {
	key, err := ws.cfg.APIKey(ws.dir)
	if err != nil {
		return nil, err
	}

	var gen advisor.Generator
	if key != "" {
		gen = advisor.NewAnthropicGenerator(advisor.AnthropicConfig{
			APIKey:    key,
			Model:     ws.cfg.AI.Model,
			MaxTokens: ws.cfg.AI.MaxTokens,
			BaseURL:   ws.cfg.AI.BaseURL,
		})
	} else {
		ws.logger.Debug("no API key found, live advice disabled", "env", ws.cfg.AI.APIKeyEnv)
	}
	return advisor.New(gen, ws.currency(), ws.logger), nil
}
