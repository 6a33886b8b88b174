package redis

import (
	"fmt"

	"github.com/2pair/lbsolve/dict/sources"
)

// init registers the Redis source. Import this package with a blank
// identifier to read word lists from Redis:
//
//	import _ "github.com/2pair/lbsolve/dict/sources/redis"
func init() {
	sources.Register("redis", NewSource)
}

// NewSource creates a Redis source from the given configuration. It
// implements sources.Factory and expects config to be of type redis.Config.
func NewSource(config interface{}) (sources.Source, error) {
	redisConfig, ok := config.(Config)
	if !ok {
		return nil, fmt.Errorf("invalid configuration type for Redis source: expected redis.Config, got %T", config)
	}
	return New(redisConfig)
}
