package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"jlview/internal/util/logx"
)

// per-line scan limit; JSON-Lines records can be large
const maxLineBytes = 1024 * 1024

// Load reads every given path into a single Store. Extension decides
// the reader: .json files are scanned line by line, .zip archives
// contribute every .json entry they contain. Unknown extensions are
// warned about on stderr and skipped; read failures abort loading.
func Load(paths []string) (*Store, error) {
	s := New()
	for _, path := range paths {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			if err := loadJSON(s, path); err != nil {
				return nil, fmt.Errorf("failed to load lines from %s: %w", path, err)
			}
		case ".zip":
			if err := loadZip(s, path); err != nil {
				return nil, fmt.Errorf("failed to load lines from %s: %w", path, err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown file extension: '%s'\n", path)
		}
	}
	logx.Infof("loaded %d lines from %d file(s)", s.Len(), len(paths))
	return s, nil
}

func loadJSON(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src := Source{File: filepath.Base(path)}
	return scanLines(s, src, f)
}

func loadZip(s *Store, path string) error {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	base := filepath.Base(path)
	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".json") {
			continue
		}
		r, err := entry.Open()
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.Name, err)
		}
		err = scanLines(s, Source{File: base, Entry: entry.Name}, r)
		r.Close()
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

func scanLines(s *Store, src Source, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNr := 0
	for scanner.Scan() {
		lineNr++
		s.Push(src, lineNr, scanner.Text())
	}
	return scanner.Err()
}
