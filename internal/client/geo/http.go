package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// HTTPClient talks to an ipinfo-style provider:
//
//	GET <base>/geo        — requester's own location
//	GET <base>/{ip}/geo   — location for an explicit subject IP
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Current(ctx context.Context) (*Location, error) {
	return c.get(ctx, c.baseURL+"/geo")
}

func (c *HTTPClient) Lookup(ctx context.Context, ip string) (*Location, error) {
	return c.get(ctx, fmt.Sprintf("%s/%s/geo", c.baseURL, ip))
}

func (c *HTTPClient) get(ctx context.Context, url string) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup failed: %s", resp.Status)
	}

	loc := &Location{}
	if err := json.NewDecoder(resp.Body).Decode(loc); err != nil {
		return nil, fmt.Errorf("decoding geo response: %w", err)
	}
	return loc, nil
}
