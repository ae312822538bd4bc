package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store owns the lifecycle of the one persisted document: bootstrap on
// first load, persist after every mutation, atomic full replacement on
// import. It holds no document state itself; callers always work on the
// value the store hands out and save it back.
type Store struct {
	path string
}

// NewStore returns a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing this store.
func (s *Store) Path() string { return s.path }

// Load returns the current document. When no blob exists yet, or the
// existing one cannot be parsed, a default document is returned and
// persisted so the next load sees it. A parse failure is logged, never
// fatal.
func (s *Store) Load() (*Document, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.bootstrap()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open document %q: %w", s.path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	var perr *ParseError
	if errors.As(err, &perr) {
		log.Printf("warning: document %q is corrupt (%v), starting over with a default one", s.path, perr.Err)
		return s.bootstrap()
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Save serializes and persists the full document, overwriting any prior
// value. It is called after every mutation so the store is never stale
// when re-read.
func (s *Store) Save(doc *Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory for %q: %w", s.path, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("cannot open document %q for writing: %w", s.path, err)
	}
	defer f.Close()
	return EncodeDocument(f, doc)
}

// Replace swaps in a full candidate document, typically one coming from
// an import. The candidate is validated first: when a required collection
// is missing a *FormatError is returned and the prior document is left
// untouched.
func (s *Store) Replace(doc *Document) error {
	if err := doc.checkCollections(); err != nil {
		return err
	}
	return s.Save(doc)
}

func (s *Store) bootstrap() (*Document, error) {
	doc := DefaultDocument()
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
