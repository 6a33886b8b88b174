// Package sources defines the interface that word sources must implement,
// along with a registry of named source factories.
//
// A source supplies the raw word list a Catalog is built from. Sources
// self-register during package initialization, so importing a source
// package makes it available by name:
//
//	import "github.com/2pair/lbsolve/dict/sources/file"
//
//	src, err := sources.Open("file", file.Config{Path: "/usr/share/dict/words"})
package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSourceNotFound is returned by Open for an unregistered source name.
// Usually means you forgot to import the source package with an underscore.
var ErrSourceNotFound = errors.New("word source not found")

// Source supplies raw words for catalog construction. Words may appear in
// any order and need not be valid for any particular puzzle; the catalog
// filters them during loading.
type Source interface {
	// Words returns every word the source holds. Implementations should
	// honor ctx cancellation for remote backends.
	Words(ctx context.Context) ([]string, error)

	// Close releases any resources held by the source. It is safe to call
	// multiple times.
	Close() error
}

// Factory creates a Source from a configuration. The factory must
// type-assert the config parameter to its expected type.
type Factory func(config interface{}) (Source, error)

var factories = make(map[string]Factory)

// Register registers a named source factory. Typically called from a
// source package's init() function. The name is case-insensitive;
// registering an existing name overwrites it.
func Register(name string, factory Factory) {
	factories[strings.ToLower(name)] = factory
}

// Open creates a Source by registered name. Returns ErrSourceNotFound if
// no factory is registered under the name.
func Open(name string, config interface{}) (Source, error) {
	factory, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}
	return factory(config)
}
