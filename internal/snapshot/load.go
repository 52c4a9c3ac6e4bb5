package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/financely/financely/internal/importer"
	"github.com/financely/financely/internal/model"
)

// Format is a snapshot file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the snapshot file name inside a workspace.
const File = "snapshot.yaml"

// TransactionsDir holds normalized transaction CSVs inside a workspace.
const TransactionsDir = "transactions"

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported snapshot file %q: want .yaml, .yml or .json", path)
}

// Decode parses a snapshot document without validating it.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parsing snapshot YAML: %w", err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return doc, nil
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parsing snapshot JSON: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unknown snapshot format %q", format)
	}
	return doc, nil
}

// Check validates a snapshot and folds all violations into one error.
func Check(snap model.Snapshot) error {
	verrs := Validate(snap)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Load reads, decodes and validates a snapshot file.
func Load(path string) (model.Snapshot, error) {
	format, err := FormatFor(path)
	if err != nil {
		return model.Snapshot{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap := doc.Snapshot()
	if err := Check(snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// LoadWorkspace reads <dir>/snapshot.yaml (optional) and appends every
// <dir>/transactions/*.csv in file-name order.
func LoadWorkspace(dir string) (model.Snapshot, error) {
	snap := model.Snapshot{}
	path := filepath.Join(dir, File)
	if _, err := os.Stat(path); err == nil {
		snap, err = Load(path)
		if err != nil {
			return model.Snapshot{}, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return model.Snapshot{}, fmt.Errorf("checking snapshot: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, TransactionsDir, "*.csv"))
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("listing transaction files: %w", err)
	}
	// Glob returns names sorted.
	for _, m := range matches {
		txns, err := readTransactionFile(m)
		if err != nil {
			return model.Snapshot{}, err
		}
		snap.Transactions = append(snap.Transactions, txns...)
	}
	return snap, nil
}

func readTransactionFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := importer.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}
