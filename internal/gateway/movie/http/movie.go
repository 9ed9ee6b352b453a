// Package http implements a movie catalog gateway over the backend's
// HTTP/JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
)

const tracerID = "movie-gateway-http"

// Gateway defines an HTTP gateway for the movie catalog. The session
// token is only needed for catalog mutations and may be empty.
type Gateway struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a new HTTP movie gateway.
func New(baseURL, token string, client *http.Client, logger *zap.Logger) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: strings.TrimRight(baseURL, "/"), token: token, client: client, logger: logger}
}

// All returns the full movie catalog.
func (g *Gateway) All(ctx context.Context) ([]model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/All")
	defer span.End()

	var movies []model.Movie
	if err := g.getJSON(ctx, g.baseURL+"/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Search returns movies matching the search text and genre. Both filters
// are applied server-side; empty values match everything. A numeric band
// is forwarded as the averagerating hint, the unrated band has no
// server-side form.
func (g *Gateway) Search(ctx context.Context, query, genre string, band *model.RatingBand) ([]model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Search")
	defer span.End()

	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if genre != "" {
		params.Set("genres", genre)
	}
	if q := band.Query(); q != "" {
		params.Set("averagerating", q)
	}
	endpoint := g.baseURL + "/movies/search"
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	var movies []model.Movie
	if err := g.getJSON(ctx, endpoint, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Delete removes a movie from the catalog. The backend restricts this to
// administrators and answers 401 otherwise.
func (g *Gateway) Delete(ctx context.Context, id string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Delete")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/movies/"+id, nil)
	if err != nil {
		return err
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return gateway.ErrNotPermitted
	case http.StatusNotFound:
		return gateway.ErrNotFound
	default:
		return fmt.Errorf("delete movie %s: unexpected status %d", id, resp.StatusCode)
	}
}

func (g *Gateway) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("movie gateway: unexpected status",
			zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("get %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
