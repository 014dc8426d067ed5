package jsonschemer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRefResolver refuses every external fetch. Handles use it until a
// resolver is configured.
var DefaultRefResolver RefResolver = func(uri string) (any, error) {
	return nil, &UnknownRefError{URI: uri}
}

// NetHTTPRefResolver fetches external schema documents with a plain GET and
// decodes the body into the engine's value model.
var NetHTTPRefResolver RefResolver = netHTTPResolver

var refClient = &http.Client{
	Timeout: 10 * time.Second, // Set a reasonable timeout for network requests.
}

func netHTTPResolver(uri string) (any, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	resp, err := refClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", uri, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return UnmarshalJSON(body)
}
