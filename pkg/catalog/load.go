package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embedded []byte

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded catalog.
// The store is parsed once and shared.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(bytes.NewReader(embedded))
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded catalog: %w", defaultErr)
		}
	})
	return defaultStore, defaultErr
}

// Embedded returns the raw embedded catalog document.
func Embedded() []byte {
	return append([]byte(nil), embedded...)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Load decodes a YAML catalog, rejecting unknown keys, and validates it.
func Load(r io.Reader) (*Store, error) {
	ds, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(ds)
}

// Decode parses a YAML catalog without validating it.
func Decode(r io.Reader) (Dataset, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return Dataset{}, fmt.Errorf("decode catalog: empty document")
		}
		return Dataset{}, fmt.Errorf("decode catalog: %w", err)
	}

	var ds Dataset
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &ds,
	})
	if err != nil {
		return Dataset{}, fmt.Errorf("catalog decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Dataset{}, fmt.Errorf("decode catalog: %w", err)
	}
	return ds, nil
}
