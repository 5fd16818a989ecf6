// Package monitorclient is an HTTP client for the monitoring service's
// uptime endpoints, used by the gateway to proxy uptime queries.
package monitorclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// DefaultTimeout bounds uptime requests when no timeout was configured.
const DefaultTimeout = 2 * time.Second

// Client queries one monitoring service instance.
type Client struct {
	base       string
	httpClient *http.Client
}

// New returns a Client for the monitoring service at base, e.g.
// "http://localhost:8083". Every request is bounded by timeout; timeout <= 0
// selects DefaultTimeout. Server errors are retried until the timeout runs
// out.
func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: base,
		httpClient: httputils.DefaultClientConfig().
			WithDialTimeout(timeout).
			WithRequestTimeout(timeout).
			Client(),
	}
}

// Uptime fetches GET /uptime?service=...[&period=...]. period may be empty,
// in which case the response covers every window.
func (c *Client) Uptime(ctx context.Context, service, period string) (*uptime.Response, error) {
	q := url.Values{"service": []string{service}}
	if period != "" {
		q.Set("period", period)
	}
	return c.fetch(ctx, "/uptime?"+q.Encode())
}

// PeriodUptime fetches GET /uptime/{period}?service=..., the path form of a
// single-window query.
func (c *Client) PeriodUptime(ctx context.Context, period, service string) (*uptime.Response, error) {
	q := url.Values{"service": []string{service}}
	return c.fetch(ctx, "/uptime/"+url.PathEscape(period)+"?"+q.Encode())
}

// fetch performs one GET against the monitoring service and decodes the
// uptime response. Any non-200 status is an error since the caller has
// already validated the query.
func (c *Client) fetch(ctx context.Context, pathWithQuery string) (*uptime.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+pathWithQuery, nil)
	if err != nil {
		return nil, wmerr.Wrap(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wmerr.Wrapf(err, "fetching %s", pathWithQuery)
	}
	defer util.Close(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, wmerr.Fmt("monitoring service returned status %d for %s", resp.StatusCode, pathWithQuery)
	}
	var ret uptime.Response
	if err := json.NewDecoder(resp.Body).Decode(&ret); err != nil {
		return nil, wmerr.Wrapf(err, "decoding uptime response")
	}
	return &ret, nil
}
