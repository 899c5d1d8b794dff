// Package sheets implements the spreadsheet workspace behind the MCP tools.
//
// A Store owns two directories: the base directory holding the workbooks the
// tools operate on, and a read-only import directory that staged files can be
// pulled from. Every filename coming off the wire resolves through the store
// so nothing escapes either directory.
package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Supported file extensions.
const (
	extXLSX = ".xlsx"
	extCSV  = ".csv"
)

// Store manages spreadsheet files under a sandboxed base directory.
type Store struct {
	baseDir   string
	importDir string
	logger    *log.Logger
}

// Open creates a Store rooted at baseDir, creating it if missing. importDir
// is optional; when empty the import tools report no staged files.
func Open(baseDir, importDir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}

	absImport := ""
	if importDir != "" {
		if absImport, err = filepath.Abs(importDir); err != nil {
			return nil, fmt.Errorf("resolve import directory: %w", err)
		}
	}

	if logger == nil {
		logger = log.Default()
	}
	logger.Info("store opened", "base", abs, "imports", absImport)

	return &Store{baseDir: abs, importDir: absImport, logger: logger}, nil
}

// BaseDir returns the absolute base directory path.
func (s *Store) BaseDir() string { return s.baseDir }

// resolve maps filename to an absolute path under the base directory.
// Filenames resolving outside the base directory fail with ErrPathTraversal.
func (s *Store) resolve(filename string) (string, error) {
	return resolveUnder(s.baseDir, filename)
}

// resolveExisting is resolve plus an existence check.
func (s *Store) resolveExisting(filename string) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	return path, nil
}

func resolveUnder(dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if abs != dir && !strings.HasPrefix(abs, dir+string(filepath.Separator)) {
		return "", ErrPathTraversal
	}
	return abs, nil
}

// formatOf classifies a filename by extension.
func formatOf(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case extXLSX:
		return extXLSX, nil
	case extCSV:
		return extCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
