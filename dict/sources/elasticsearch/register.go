package elasticsearch

import (
	"fmt"

	"github.com/2pair/lbsolve/dict/sources"
)

// init registers the Elasticsearch source. Import this package with a
// blank identifier to read word lists from Elasticsearch:
//
//	import _ "github.com/2pair/lbsolve/dict/sources/elasticsearch"
func init() {
	sources.Register("elasticsearch", NewSource)
}

// NewSource creates an Elasticsearch source from the given configuration.
// It implements sources.Factory and expects config to be of type
// elasticsearch.Config.
func NewSource(config interface{}) (sources.Source, error) {
	esConfig, ok := config.(Config)
	if !ok {
		return nil, fmt.Errorf("invalid configuration type for Elasticsearch source: expected elasticsearch.Config, got %T", config)
	}
	return New(esConfig)
}
