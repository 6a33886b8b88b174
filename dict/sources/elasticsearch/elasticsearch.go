package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
)

// Source reads the word list from an Elasticsearch index, one document
// per word.
type Source struct {
	client   *elasticsearch.Client
	index    string
	pageSize int
}

// wordDocument represents the structure stored in Elasticsearch.
type wordDocument struct {
	Word string `json:"word"`
}

// searchHit represents a single search result from Elasticsearch.
type searchHit struct {
	Source wordDocument  `json:"_source"`
	Sort   []interface{} `json:"sort"`
}

// searchResponse represents the Elasticsearch search response.
type searchResponse struct {
	Hits struct {
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

// New creates an Elasticsearch source with the given configuration and
// verifies connectivity.
func New(config Config) (*Source, error) {
	config.setDefaults()

	esConfig := elasticsearch.Config{
		Addresses: config.URLs,
		Username:  config.Username,
		Password:  config.Password,
		CloudID:   config.CloudID,
		APIKey:    config.APIKey,
	}

	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Elasticsearch: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, fmt.Errorf("Elasticsearch connection error: %s", res.String())
	}

	return &Source{
		client:   client,
		index:    config.Index,
		pageSize: config.PageSize,
	}, nil
}

// Words returns every word in the index, paging with search_after on the
// "word" keyword field so arbitrarily large word lists can be read.
func (s *Source) Words(ctx context.Context) ([]string, error) {
	var words []string
	var after []interface{}

	for {
		page, next, err := s.searchPage(ctx, after)
		if err != nil {
			return nil, err
		}
		words = append(words, page...)
		if len(page) < s.pageSize || next == nil {
			return words, nil
		}
		after = next
	}
}

// searchPage fetches one page of word documents, returning the words and
// the sort cursor for the following page.
func (s *Source) searchPage(ctx context.Context, after []interface{}) ([]string, []interface{}, error) {
	body := map[string]interface{}{
		"size":    s.pageSize,
		"query":   map[string]interface{}{"match_all": map[string]interface{}{}},
		"sort":    []map[string]string{{"word": "asc"}},
		"_source": []string{"word"},
	}
	if after != nil {
		body["search_after"] = after
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search index %q: %w", s.index, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, nil, fmt.Errorf("search error on index %q: %s", s.index, res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	words := make([]string, 0, len(parsed.Hits.Hits))
	var next []interface{}
	for _, hit := range parsed.Hits.Hits {
		if hit.Source.Word != "" {
			words = append(words, hit.Source.Word)
		}
		next = hit.Sort
	}
	return words, next, nil
}

// Close is a no-op; the underlying HTTP transport needs no teardown.
func (s *Source) Close() error {
	return nil
}
