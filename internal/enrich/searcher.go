// Package enrich answers catalog misses in search mode: it queries a web
// search endpoint, summarizes the top snippets and appends a pitch for the
// in-house alternative when the query names a competitor brand.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	coreconfig "barbot/core/config"
)

// ErrNoAPIKey signals that the search collaborator is not configured.
var ErrNoAPIKey = errors.New("enrich: search api key not set")

// SearchResult is one web page hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher is the web-search port.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// WebSearcher queries a Bing-compatible web search API.
type WebSearcher struct {
	endpoint string
	apiKey   string
	market   string
	count    int
	client   *http.Client
}

func NewWebSearcher(cfg coreconfig.EnrichmentConfig, client *http.Client) *WebSearcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebSearcher{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		market:   cfg.Market,
		count:    5,
		client:   client,
	}
}

func (w *WebSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if w.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("mkt", w.market)
	params.Set("count", strconv.Itoa(w.count))
	params.Set("textDecorations", "false")
	params.Set("textFormat", "Raw")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("enrich: build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", w.apiKey)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrich: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrich: search status %d", resp.StatusCode)
	}

	var payload struct {
		WebPages struct {
			Value []struct {
				Name    string `json:"name"`
				URL     string `json:"url"`
				Snippet string `json:"snippet"`
			} `json:"value"`
		} `json:"webPages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("enrich: decode response: %w", err)
	}

	out := make([]SearchResult, 0, len(payload.WebPages.Value))
	for _, v := range payload.WebPages.Value {
		out = append(out, SearchResult{Title: v.Name, URL: v.URL, Snippet: v.Snippet})
	}
	return out, nil
}
