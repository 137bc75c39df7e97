// Package store holds the in-memory line collection the viewer
// navigates over. Lines are kept as raw text tagged with their
// originating source and 1-based line number; the JSON object form of
// a line is decoded on demand and memoized.
package store

import "fmt"

// Source identifies where a line came from. Entry is empty for plain
// files and holds the inner file name for zip archive entries.
type Source struct {
	File  string
	Entry string
}

func (s Source) String() string {
	if s.Entry == "" {
		return s.File
	}
	return s.File + "/" + s.Entry
}

// Line is one raw record. LineNr is 1-based within its source.
type Line struct {
	SourceID int
	LineNr   int
	Text     string
}

// Store is an ordered, append-once collection of raw lines. It is
// read-only after loading; the decoded-fields cache is the only
// mutable part and the UI is single-threaded.
type Store struct {
	sources []Source
	lines   []Line

	fields map[int][]Field
}

func New() *Store {
	return &Store{fields: map[int][]Field{}}
}

func (s *Store) Len() int { return len(s.lines) }

func (s *Store) Empty() bool { return len(s.lines) == 0 }

// Line returns the record at index i. The index must be in range.
func (s *Store) Line(i int) Line { return s.lines[i] }

// Raw returns the raw text of line i.
func (s *Store) Raw(i int) string { return s.lines[i].Text }

// SourceName resolves a line's source identifier for display.
func (s *Store) SourceName(id int) (Source, error) {
	if id < 0 || id >= len(s.sources) {
		return Source{}, fmt.Errorf("unknown source id %d", id)
	}
	return s.sources[id], nil
}

// Locator renders the "source:lineNr" status-line text for line i.
func (s *Store) Locator(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	l := s.lines[i]
	src, err := s.SourceName(l.SourceID)
	if err != nil {
		return fmt.Sprintf("?:%d", l.LineNr)
	}
	return fmt.Sprintf("%s:%d", src, l.LineNr)
}

// Push appends a line, interning its source.
func (s *Store) Push(src Source, lineNr int, text string) {
	s.lines = append(s.lines, Line{
		SourceID: s.sourceID(src),
		LineNr:   lineNr,
		Text:     text,
	})
}

func (s *Store) sourceID(src Source) int {
	for id, known := range s.sources {
		if known == src {
			return id
		}
	}
	s.sources = append(s.sources, src)
	return len(s.sources) - 1
}

// Fields returns line i decoded as a JSON object with its key order
// preserved, or ok=false when the line is not a JSON object (including
// malformed JSON). Results are memoized per line index.
func (s *Store) Fields(i int) ([]Field, bool) {
	if i < 0 || i >= len(s.lines) {
		return nil, false
	}
	if cached, hit := s.fields[i]; hit {
		return cached, cached != nil
	}
	decoded, ok := DecodeObject(s.lines[i].Text)
	if !ok {
		s.fields[i] = nil
		return nil, false
	}
	s.fields[i] = decoded
	return decoded, true
}
