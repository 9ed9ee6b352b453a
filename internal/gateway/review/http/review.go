// Package http implements the review repository over the backend's
// HTTP/JSON API. Every call is a fresh round trip, there is no local
// cache.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
)

const tracerID = "review-gateway-http"

// Gateway defines an HTTP gateway for the review collection. The session
// token is attached to every request; the backend derives the acting user
// from it on mutations.
type Gateway struct {
	baseURL  string
	token    string
	client   *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a new HTTP review gateway.
func New(baseURL, token string, client *http.Client, logger *zap.Logger) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		client:   client,
		validate: validator.New(),
		logger:   logger,
	}
}

type listResponse struct {
	Reviews       []model.Review `json:"reviews"`
	AverageRating *float64       `json:"averageRating"`
}

// List returns all reviews for a movie in server-assigned order.
func (g *Gateway) List(ctx context.Context, movieID string) ([]model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/List")
	defer span.End()

	resp, err := g.do(ctx, http.MethodGet, "/reviews/"+movieID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError(resp.StatusCode, "list reviews for "+movieID)
	}
	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode reviews for %s: %w", movieID, err)
	}
	return payload.Reviews, nil
}

// ListByUser returns all reviews authored by a user, each embedding the
// reviewed movie.
func (g *Gateway) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/ListByUser")
	defer span.End()

	resp, err := g.do(ctx, http.MethodGet, "/reviews/by-user/"+userID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError(resp.StatusCode, "list reviews by "+userID)
	}
	var reviews []model.Review
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		return nil, fmt.Errorf("decode reviews by %s: %w", userID, err)
	}
	return reviews, nil
}

// Create submits a new review. The payload is validated before any
// network call; a 400 from the backend means the user already reviewed
// the movie and surfaces as ErrDuplicateReview.
func (g *Gateway) Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Create")
	defer span.End()

	if err := g.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrInvalidInput, err)
	}
	resp, err := g.do(ctx, http.MethodPost, "/reviews", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest:
		return nil, gateway.ErrDuplicateReview
	default:
		return nil, g.statusError(resp.StatusCode, "create review")
	}
	var created model.Review
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created review: %w", err)
	}
	return &created, nil
}

// Update replaces the rating and text of an existing review. Only the
// owning user may succeed.
func (g *Gateway) Update(ctx context.Context, reviewID string, req model.UpdateReviewRequest) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Update")
	defer span.End()

	if err := g.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrInvalidInput, err)
	}
	resp, err := g.do(ctx, http.MethodPut, "/reviews/"+reviewID, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError(resp.StatusCode, "update review "+reviewID)
	}
	var updated model.Review
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("decode updated review: %w", err)
	}
	return &updated, nil
}

// Delete removes a review. Deleting a review that no longer exists is an
// error, not a no-op: it signals the caller's view is stale.
func (g *Gateway) Delete(ctx context.Context, reviewID string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Delete")
	defer span.End()

	resp, err := g.do(ctx, http.MethodDelete, "/reviews/"+reviewID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return g.statusError(resp.StatusCode, "delete review "+reviewID)
	}
}

func (g *Gateway) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload := &bytes.Buffer{}
		if err := json.NewEncoder(payload).Encode(body); err != nil {
			return nil, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		reader = payload
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func (g *Gateway) statusError(status int, op string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return gateway.ErrNotPermitted
	case http.StatusNotFound:
		return gateway.ErrNotFound
	default:
		g.logger.Warn("review gateway: unexpected status",
			zap.String("op", op), zap.Int("status", status))
		return fmt.Errorf("%s: unexpected status %d", op, status)
	}
}
