// Package http implements a rating aggregate gateway. The backend serves
// aggregates from the review collection, so the fetch shares the reviews
// endpoint and reads only the averageRating field.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "rating-gateway-http"

// Gateway defines an HTTP gateway for per-movie aggregate ratings.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a new HTTP rating gateway.
func New(baseURL string, client *http.Client, logger *zap.Logger) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, logger: logger}
}

// GetAggregate returns the aggregate rating for a movie, or nil if the
// movie is unrated. A missing review document also counts as unrated.
func (g *Gateway) GetAggregate(ctx context.Context, movieID string) (*float64, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/GetAggregate")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reviews/"+movieID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get aggregate for %s: %w", movieID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("get aggregate for %s: unexpected status %d", movieID, resp.StatusCode)
	}

	var payload struct {
		AverageRating *float64 `json:"averageRating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode aggregate for %s: %w", movieID, err)
	}
	return payload.AverageRating, nil
}
