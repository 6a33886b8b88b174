package file

import (
	"fmt"

	"github.com/2pair/lbsolve/dict/sources"
)

// init registers the file source. Import this package with a blank
// identifier to read word lists from disk:
//
//	import _ "github.com/2pair/lbsolve/dict/sources/file"
func init() {
	sources.Register("file", NewSource)
}

// NewSource creates a file source from the given configuration. It
// implements sources.Factory and expects config to be of type file.Config.
func NewSource(config interface{}) (sources.Source, error) {
	fileConfig, ok := config.(Config)
	if !ok {
		return nil, fmt.Errorf("invalid configuration type for file source: expected file.Config, got %T", config)
	}
	return New(fileConfig)
}
