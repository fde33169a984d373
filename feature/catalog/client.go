package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the boundary contract to the upstream catalog API. Every method
// returns the decoded raw payload as-is; reconciliation happens downstream.
// An absent payload (nil, nil) means "no results", not an error; upstream
// regularly answers 404 for empty result sets.
type Client interface {
	SearchTracks(ctx context.Context, query string) (any, error)
	SearchAlbums(ctx context.Context, query string) (any, error)
	SearchArtists(ctx context.Context, query string) (any, error)
	SearchPlaylists(ctx context.Context, query string) (any, error)
	GetAlbumTracks(ctx context.Context, albumID string) (any, error)
	GetPlaylistTracks(ctx context.Context, playlistID string) (any, error)
	GetArtist(ctx context.Context, artistID string) (any, error)
	GetArtistAlbums(ctx context.Context, artistID string) (any, error)
}

// httpClient is the HTTP implementation of Client.
type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a catalog API client with strict connection timeouts.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

func (c *httpClient) SearchTracks(ctx context.Context, query string) (any, error) {
	return c.get(ctx, "/search/tracks", url.Values{"query": {query}})
}

func (c *httpClient) SearchAlbums(ctx context.Context, query string) (any, error) {
	return c.get(ctx, "/search/albums", url.Values{"query": {query}})
}

func (c *httpClient) SearchArtists(ctx context.Context, query string) (any, error) {
	return c.get(ctx, "/search/artists", url.Values{"query": {query}})
}

func (c *httpClient) SearchPlaylists(ctx context.Context, query string) (any, error) {
	return c.get(ctx, "/search/playlists", url.Values{"query": {query}})
}

func (c *httpClient) GetAlbumTracks(ctx context.Context, albumID string) (any, error) {
	return c.get(ctx, "/albums/"+url.PathEscape(albumID)+"/tracks", nil)
}

func (c *httpClient) GetPlaylistTracks(ctx context.Context, playlistID string) (any, error) {
	return c.get(ctx, "/playlists/"+url.PathEscape(playlistID)+"/tracks", nil)
}

func (c *httpClient) GetArtist(ctx context.Context, artistID string) (any, error) {
	return c.get(ctx, "/artists/"+url.PathEscape(artistID), nil)
}

func (c *httpClient) GetArtistAlbums(ctx context.Context, artistID string) (any, error) {
	return c.get(ctx, "/artists/"+url.PathEscape(artistID)+"/albums", nil)
}

// get issues a GET against the catalog API and decodes the JSON body with
// number preservation (json.Number), so integer ids survive re-encoding.
// 404 and empty bodies map to an absent payload.
func (c *httpClient) get(ctx context.Context, path string, params url.Values) (any, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("countryCode", c.cfg.CountryCode)
	if c.cfg.Limit > 0 {
		params.Set("limit", strconv.Itoa(c.cfg.Limit))
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d for %s", res.StatusCode, path)
	}

	dec := json.NewDecoder(res.Body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return raw, nil
}
