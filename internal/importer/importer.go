package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/financely/financely/internal/model"
)

// Parser converts a CSV export into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NativeParser{})
	r.Register(&ChaseParser{})
	return r
}

// importDir holds CSV files waiting to be imported.
const importDir = "import"

// processedDir receives CSV files once imported.
const processedDir = "import/processed"

// Scan returns CSV files in <workspace>/import/.
func Scan(workspace string) ([]FileInfo, error) {
	dir := filepath.Join(workspace, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(workspace, fileName string) error {
	src := filepath.Join(workspace, importDir, fileName)
	dstDir := filepath.Join(workspace, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	if err := os.Rename(src, filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// writeTransactions is swapped out by tests to simulate write failures.
var writeTransactions = WriteTransactions

// ImportFile parses one pending file with p and writes the normalized
// transactions to outPath in the native format. outPath only appears once
// it is complete; a failed write leaves nothing behind.
func ImportFile(p Parser, file FileInfo, outPath string) (int, error) {
	in, err := os.Open(file.Path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer in.Close()

	txns, err := p.Parse(in)
	if err != nil {
		return 0, fmt.Errorf("parsing %s as %s: %w", file.Name, p.Format(), err)
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating transactions dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outPath, err)
	}
	tmpPath := tmp.Name()

	err = writeTransactions(tmp, txns)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, outPath)
	}
	if err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return len(txns), nil
}
