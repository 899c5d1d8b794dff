package sheets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoImportDir indicates the store was opened without an import directory.
var ErrNoImportDir = errors.New("no import directory configured")

// ListImports lists spreadsheet files staged in the import directory.
func (s *Store) ListImports() (*ImportListResult, error) {
	if s.importDir == "" {
		return nil, ErrNoImportDir
	}

	entries, err := os.ReadDir(s.importDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ImportListResult{Success: true, Files: []FileInfo{}}, nil
		}
		return nil, opErr("imports", s.importDir, err)
	}

	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != extXLSX && ext != extCSV {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: entry.Name(), Size: info.Size(), Type: ext})
	}
	return &ImportListResult{Success: true, Files: files, Count: len(files)}, nil
}

// ImportFile copies a staged file from the import directory into the
// workspace. target defaults to the source name.
func (s *Store) ImportFile(source, target string) (*ImportResult, error) {
	if s.importDir == "" {
		return nil, ErrNoImportDir
	}
	if target == "" {
		target = filepath.Base(source)
	}
	if _, err := formatOf(source); err != nil {
		return nil, err
	}

	srcPath, err := resolveUnder(s.importDir, source)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, source)
	}

	dstPath, err := s.resolve(target)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dstPath); err == nil {
		return &ImportResult{Success: false, Reason: fmt.Sprintf("File %s already exists", target)}, nil
	}

	if err := copyFile(srcPath, dstPath); err != nil {
		return nil, opErr("import", source, err)
	}

	s.logger.Info("imported file", "source", source, "target", target)
	return &ImportResult{Success: true, Source: source, Target: filepath.Base(dstPath)}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
