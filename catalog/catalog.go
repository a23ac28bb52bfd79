// Package catalog loads knapsack catalogs from YAML or JSON documents and
// ships the reference datasets used by the CLI and tests.
//
// Document shape (JSON is accepted as YAML):
//
//	name: portfolio-q3
//	capacity: 10
//	items:
//	  - {name: A, value: 12, cost: 4}
//	  - {name: B, value: 10, cost: 3}
//
// Unknown keys are rejected so that typos ("costs:") do not silently
// produce empty catalogs. Every loaded catalog passes knapsack.Catalog.Validate.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jota0802/gs-dynamic/knapsack"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")

	// ErrUnknownDataset is returned by Builtin for an unregistered name.
	ErrUnknownDataset = errors.New("catalog: unknown dataset")

	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("catalog: empty document")
)

// Load decodes one catalog document from r and validates it.
func Load(r io.Reader) (knapsack.Catalog, error) {
	var cat knapsack.Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return knapsack.Catalog{}, ErrEmptyDocument
		}
		return knapsack.Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return knapsack.Catalog{}, fmt.Errorf("catalog %q: %w", cat.Name, err)
	}

	return cat, nil
}

// LoadFile opens path and decodes it with Load. When the document carries
// no name, the file's base name (without extension) is used.
func LoadFile(path string) (knapsack.Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return knapsack.Catalog{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return knapsack.Catalog{}, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return knapsack.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	if cat.Name == "" {
		cat.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return cat, nil
}

// Marshal encodes cat as a YAML document in the shape Load reads.
func Marshal(cat knapsack.Catalog) ([]byte, error) {
	return yaml.Marshal(cat)
}
