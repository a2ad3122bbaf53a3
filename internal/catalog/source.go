package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Source produces a validated catalog. Sources are read once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// --------------------------------------------------
// Builtin
// --------------------------------------------------

type BuiltinSource struct{}

func (BuiltinSource) Load(ctx context.Context) (*Catalog, error) {
	return New(builtin)
}

// --------------------------------------------------
// YAML document (file on disk or object in a bucket)
// --------------------------------------------------

// Decode parses a YAML catalog document keyed by slot name.
func Decode(data []byte) (*Catalog, error) {
	var doc map[string][]FoodItem
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog document: %w", err)
	}

	slots := make(map[Slot][]FoodItem, len(doc))
	for name, items := range doc {
		slot, err := ParseSlot(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		slots[slot] = items
	}

	return New(slots)
}

// Encode renders a catalog as a YAML document that Decode accepts.
func Encode(c *Catalog) ([]byte, error) {
	doc := make(map[string][]FoodItem, len(Slots))
	for slot, items := range c.All() {
		doc[string(slot)] = items
	}
	return yaml.Marshal(doc)
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Decode(data)
}

// ObjectFetcher reads a whole object from a bucket.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type ObjectSource struct {
	Fetcher ObjectFetcher
	Key     string
}

func (s ObjectSource) Load(ctx context.Context) (*Catalog, error) {
	data, err := s.Fetcher.Fetch(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog object %s: %w", s.Key, err)
	}
	return Decode(data)
}
