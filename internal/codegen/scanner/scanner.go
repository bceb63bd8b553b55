package scanner

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// AnnotationPrefix marks an exported C API function. Only lines beginning
// with this prefix (after leading whitespace) are handed to the parser.
const AnnotationPrefix = "OMP_CAPI("

// SourceSuffix selects which files of the tree carry annotations.
const SourceSuffix = ".cpp"

// ListSourceFiles recursively enumerates files under root whose name ends in
// SourceSuffix. fs.WalkDir visits entries in lexical order, which is the
// stable order grouping relies on.
func ListSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), SourceSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source tree: %w", err)
	}
	return files, nil
}

// ScanFile streams a single file and returns its annotation lines in file
// order. Everything else is discarded before parsing.
func ScanFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, AnnotationPrefix) {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ScanTree scans every source file under root and returns the parsed records
// in deterministic order: lexical file order, then line order within each
// file. Files are read concurrently; results are assembled by file index so
// I/O completion order never leaks into the output.
func ScanTree(logger *slog.Logger, root string) ([]APIRecord, error) {
	files, err := ListSourceFiles(root)
	if err != nil {
		return nil, err
	}

	perFile := make([][]APIRecord, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			lines, err := ScanFile(path)
			if err != nil {
				return err
			}
			records := make([]APIRecord, 0, len(lines))
			for _, line := range lines {
				rec, err := ParseSignature(line)
				if err != nil {
					logger.Warn("Skipping malformed annotation", "file", path, "line", line, "error", err)
					continue
				}
				records = append(records, rec)
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []APIRecord
	for _, records := range perFile {
		all = append(all, records...)
	}
	logger.Info("Scanned API annotations", "files", len(files), "functions", len(all))
	return all, nil
}
