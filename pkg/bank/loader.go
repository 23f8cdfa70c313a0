package bank

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result contains the results of loading bank documents.
type Result struct {
	Files     int
	Questions int
}

// Loader handles loading bank documents into the database.
type Loader struct {
	store Store
}

// NewLoader creates a new bank loader.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// LoadFromReader parses, validates and loads one bank document.
func (l *Loader) LoadFromReader(r io.Reader) (*Result, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return l.Load(doc)
}

// LoadFile loads one bank document from disk.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := l.LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Files = 1
	return result, nil
}

// LoadDir loads every .yml and .yaml document under a directory, in lexical
// order. All documents load in one transaction; one bad document rolls back
// the whole load.
func (l *Loader) LoadDir(dir string) (*Result, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yml" || ext == ".yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	// Parse and validate everything before touching the database.
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		doc, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
	}

	result := &Result{Files: len(paths)}
	err = l.store.Transaction(func(txStore Store) error {
		for _, doc := range docs {
			for _, entry := range doc.Questions {
				record := entry.Model()
				if err := txStore.UpsertQuestion(&record); err != nil {
					return err
				}
				result.Questions++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Load applies a parsed and validated document to the database.
func (l *Loader) Load(doc *Document) (*Result, error) {
	result := &Result{}
	err := l.store.Transaction(func(txStore Store) error {
		for _, entry := range doc.Questions {
			record := entry.Model()
			if err := txStore.UpsertQuestion(&record); err != nil {
				return err
			}
			result.Questions++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
