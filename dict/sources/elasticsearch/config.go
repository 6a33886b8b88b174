// Package elasticsearch implements the word Source interface using
// Elasticsearch as the storage backend.
package elasticsearch

// Config holds Elasticsearch connection parameters and source-specific
// options.
type Config struct {
	// URLs is the list of Elasticsearch node URLs.
	URLs []string

	// Index is the name of the Elasticsearch index holding word documents.
	// Each document stores its word in the "word" keyword field.
	Index string

	// Username for basic authentication.
	Username string

	// Password for basic authentication.
	Password string

	// CloudID for connecting to Elastic Cloud.
	CloudID string

	// APIKey for API key authentication (alternative to username/password).
	APIKey string

	// PageSize is the number of documents fetched per search page.
	// Default: 1000.
	PageSize int
}

// setDefaults applies default values to config fields.
func (c *Config) setDefaults() {
	if c.Index == "" {
		c.Index = "lbsolve-words"
	}
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
}
